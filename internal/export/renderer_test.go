package export

import (
	"encoding/json"
	"testing"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() model.Record {
	return model.Record{
		ID:              "3b7e1c9a-0000-5000-8000-000000000000",
		Title:           "Spacing Effects",
		Category:        model.CategoryValidation,
		Abstract:        "spaced exposure improves retention",
		Findings:        []string{"85% improvement", "effect persists"},
		RoutingDecision: model.RouteMissionCritical,
		Priority:        0.97,
		Justification:   "mission-critical: priority 0.97 with mission alignment 1.00",
		Glyph:           "◆◇●○",
		ChronoMarker:    "2026-08-31_VALIDATION_001",
		Status:          model.StatusDraft,
		CreatedAt:       "2026-08-31T10:00:00Z",
		Tags:            []string{"pilot"},
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	out := NewRenderer(true).Markdown([]model.Record{sampleRecord()})

	assert.Contains(t, out, "# Research Findings")
	assert.Contains(t, out, "## ◆◇●○ Spacing Effects")
	assert.Contains(t, out, "**Routing**: Mission Critical")
	assert.Contains(t, out, "**Priority**: 0.97")
	assert.Contains(t, out, "`2026-08-31_VALIDATION_001`")
	assert.Contains(t, out, "- 85% improvement")
	assert.Contains(t, out, "**Tags**: pilot")
	assert.Contains(t, out, "_Generated by esper-thesis_")
}

func TestMarkdownWithoutFooter(t *testing.T) {
	t.Parallel()

	out := NewRenderer(false).Markdown([]model.Record{sampleRecord()})
	assert.NotContains(t, out, "_Generated by esper-thesis_")
}

func TestJSONRoundTrips(t *testing.T) {
	t.Parallel()

	in := []model.Record{sampleRecord()}
	data, err := NewRenderer(true).JSON(in)
	require.NoError(t, err)

	var out []model.Record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTextListing(t *testing.T) {
	t.Parallel()

	out := NewRenderer(true).Text([]model.Record{sampleRecord()})
	assert.Contains(t, out, "[2026-08-31_VALIDATION_001] Spacing Effects")
	assert.Contains(t, out, "routing=mission_critical")
	assert.Contains(t, out, "priority=0.97")
}

func TestSummary(t *testing.T) {
	t.Parallel()

	record := sampleRecord()
	out := NewRenderer(true).Summary(&record)
	assert.Equal(t, "◆◇●○ Spacing Effects → Mission Critical (priority 0.97)", out)
}
