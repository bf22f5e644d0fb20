// Package assess implements the five dimension scorers. Each scorer is a
// pure function of the submission text: no scorer reads another's output,
// global state, or the clock. All scores are clamped to [0, 1] and every
// scorer degrades to low default scores on sparse input rather than failing.
package assess

import "strings"

// countPresent returns how many of the terms occur in text as substrings.
// Matching is presence-based, not frequency-based: a term counts once no
// matter how often it appears.
func countPresent(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// anyPresent reports whether at least one term occurs in text.
func anyPresent(text string, terms []string) bool {
	return countPresent(text, terms) > 0
}

// titleAbstract joins title and abstract lowercased, the common search
// surface for lexical cues.
func titleAbstract(title, abstract string) string {
	return strings.ToLower(title + " " + abstract)
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
