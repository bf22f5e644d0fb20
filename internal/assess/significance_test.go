package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificanceBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		title     string
		abstract  string
		academic  float64
		practical float64
		mission   float64
	}{
		{
			name:      "no weighted vocabulary yields the bases",
			title:     "An Uneventful Paper",
			abstract:  "nothing of note happened",
			academic:  0.3,
			practical: 0.3,
			mission:   MissionFloor,
		},
		{
			name:      "high academic terms",
			title:     "A Theory and Framework",
			abstract:  "an empirical hypothesis",
			academic:  0.3 + 0.15*4,
			practical: 0.3,
			mission:   MissionFloor,
		},
		{
			name:      "medium practical terms",
			title:     "An Implementation Note",
			abstract:  "a practical tooling pipeline for one application",
			academic:  0.3,
			practical: 0.3 + 0.08*5,
			mission:   MissionFloor,
		},
		{
			name:      "mission vocabulary",
			title:     "Reading for Liberation",
			abstract:  "literacy and comprehension for all students",
			academic:  0.3,
			practical: 0.3,
			mission:   MissionFloor + 0.15*4 + 0.08*1,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Significance(tc.title, tc.abstract)
			assert.InDelta(t, tc.academic, got.Academic, 1e-9)
			assert.InDelta(t, tc.practical, got.Practical, 1e-9)
			assert.InDelta(t, tc.mission, got.MissionAlignment, 1e-9)
			assert.InDelta(t, (got.Academic+got.Practical+got.MissionAlignment)/3, got.Overall, 1e-12)
		})
	}
}

func TestSignificanceMissionFloorIsPositive(t *testing.T) {
	t.Parallel()

	got := Significance("Quantum Tunneling Rates", "a condensed matter calculation")
	assert.InDelta(t, MissionFloor, got.MissionAlignment, 1e-9)
	assert.Greater(t, got.MissionAlignment, 0.0)
}

func TestSignificanceDomains(t *testing.T) {
	t.Parallel()

	got := Significance("Machine Learning for Language Teaching",
		"a cognitive model implemented in software")
	assert.Equal(t, []string{"ai", "linguistics", "education", "psychology", "computer_science"}, got.Domains)

	none := Significance("An Uneventful Paper", "nothing of note")
	assert.Empty(t, none.Domains)
}
