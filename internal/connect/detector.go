// Package connect derives keyword-overlap connections between a new
// submission and the existing corpus. Connections are advisory: they are
// computed on demand from a read-consistent snapshot and never stored as
// first-class entities, so staleness against a since-modified corpus is
// acceptable.
package connect

import (
	"sort"
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Two records are connected when their salient keyword sets share at least
// this many terms.
const overlapThreshold = 2

// overlap size at which connection strength saturates
const strengthSaturation = 10

// maximum themes reported per detection
const maxThemes = 5

// Result is the detector output consumed by the linkage scorer.
type Result struct {
	Connections    []model.Connection
	Themes         []string
	Contradictions []string // declared extension point, currently always empty
}

// Detector finds connections by scanning the full corpus once per
// submission. Cost is O(n) keyword-set intersections; no index is kept, which
// is a scaling concern past a few thousand records but not a correctness one.
type Detector struct{}

// NewDetector creates a detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect compares the submission against every record in the corpus
// snapshot. Corpus order is preserved in the returned connections so that
// repeated runs over the same snapshot yield identical output.
func (d *Detector) Detect(sub model.Submission, corpus []model.Record) Result {
	mine := Keywords(sub.Title, sub.Abstract, sub.Findings, sub.Tags)

	var connections []model.Connection
	themeCounts := map[string]int{}

	for _, other := range corpus {
		theirs := Keywords(other.Title, other.Abstract, other.Findings, other.Tags)

		var shared []string
		for term := range mine {
			if theirs[term] {
				shared = append(shared, term)
			}
		}
		if len(shared) < overlapThreshold {
			continue
		}
		sort.Strings(shared)

		strength := float64(len(shared)) / strengthSaturation
		if strength > 1 {
			strength = 1
		}

		connections = append(connections, model.Connection{
			RecordID:     other.ID,
			Strength:     strength,
			SharedThemes: shared,
		})
		for _, term := range shared {
			themeCounts[term]++
		}
	}

	return Result{
		Connections: connections,
		Themes:      clusterThemes(themeCounts),
	}
}

// Keywords extracts the salient keyword bag: lowercase alphanumeric words
// longer than four characters from title, abstract, findings, and tags.
func Keywords(title, abstract string, findings, tags []string) map[string]bool {
	parts := []string{title, abstract}
	parts = append(parts, findings...)
	parts = append(parts, tags...)

	bag := map[string]bool{}
	for _, word := range strings.Fields(strings.Join(parts, " ")) {
		word = strings.ToLower(word)
		if len(word) > 4 && isAlnum(word) {
			bag[word] = true
		}
	}
	return bag
}

// clusterThemes ranks shared terms by how many connections they appear in,
// ties broken lexically, and keeps the top few as themes.
func clusterThemes(counts map[string]int) []string {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxThemes {
		terms = terms[:maxThemes]
	}
	return terms
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
