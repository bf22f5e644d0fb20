package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoherenceSubScores(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		abstract   string
		findings   []string
		logic      float64
		foundation float64
		clarity    float64
	}{
		{
			name:       "bare abstract gets the base scores",
			abstract:   "spacing helps retention somewhat",
			findings:   []string{"one finding"},
			logic:      0.8,
			foundation: 0.5,
			clarity:    0.7,
		},
		{
			name:       "causal connective raises logic",
			abstract:   "retention improves because exposure is spaced",
			findings:   []string{"one finding"},
			logic:      0.9,
			foundation: 0.5,
			clarity:    0.7,
		},
		{
			name:       "counterpoint connective raises logic independently",
			abstract:   "spacing helps; however, effects fade over months",
			findings:   []string{"one finding"},
			logic:      0.9,
			foundation: 0.5,
			clarity:    0.7,
		},
		{
			name:       "both connectives cap logic at one",
			abstract:   "it works because of spacing; however, not always. therefore we test.",
			findings:   []string{"one finding"},
			logic:      1.0,
			foundation: 0.5,
			clarity:    0.85, // three sentence fragments
		},
		{
			name:       "every foundation phrase counts once",
			abstract:   "builds on and extends prior work, based on and following earlier studies",
			findings:   []string{"one finding"},
			logic:      0.8,
			foundation: 1.0,
			clarity:    0.7,
		},
		{
			name:       "long structured abstract with two findings maxes clarity",
			abstract:   "First sentence. Second sentence. Third sentence.",
			findings:   []string{"a", "b"},
			logic:      0.8,
			foundation: 0.5,
			clarity:    1.0,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Coherence("Spacing Study", tc.abstract, tc.findings)
			assert.InDelta(t, tc.logic, got.LogicalConsistency, 1e-9)
			assert.InDelta(t, tc.foundation, got.FoundationStrength, 1e-9)
			assert.InDelta(t, tc.clarity, got.ConceptualClarity, 1e-9)
		})
	}
}

func TestCoherenceBreakthroughPotential(t *testing.T) {
	t.Parallel()

	plain := Coherence("A Study", "a plain abstract with no special claims", nil)
	assert.InDelta(t, 0.3, plain.BreakthroughPotential, 1e-9)

	// Title terms count too.
	bold := Coherence("A Novel Breakthrough", "the first unprecedented result", nil)
	assert.InDelta(t, 0.3+0.15*4, bold.BreakthroughPotential, 1e-9)
}

func TestCoherenceScoreIsMeanOfSubScores(t *testing.T) {
	t.Parallel()

	got := Coherence("Title", "builds on prior work because spacing matters", []string{"a", "b"})
	mean := (got.LogicalConsistency + got.ConceptualClarity +
		got.FoundationStrength + got.BreakthroughPotential) / 4
	assert.InDelta(t, mean, got.Score, 1e-12)
}

func TestCoherenceDependencies(t *testing.T) {
	t.Parallel()

	got := Coherence("Title",
		"this requires calibration and depends on priming; it also assumes literacy and requires calibration again",
		nil)
	assert.Equal(t, []string{"calibration", "literacy", "priming"}, got.Dependencies)
}

func TestCoherenceIssues(t *testing.T) {
	t.Parallel()

	got := Coherence("Title", "the result contains a contradiction and an unclear definition", nil)
	assert.Len(t, got.Issues, 2)

	clean := Coherence("Title", "a perfectly ordinary abstract", nil)
	assert.Empty(t, clean.Issues)
}
