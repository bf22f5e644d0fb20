package encode

import (
	"sort"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphDeterministic(t *testing.T) {
	t.Parallel()

	first := Glyph("Self-Narrative Literacy Field Test")
	second := Glyph("Self-Narrative Literacy Field Test")
	assert.Equal(t, first, second)
	assert.Equal(t, 4, utf8.RuneCountInString(first))

	for _, r := range first {
		assert.Contains(t, glyphAlphabet, string(r))
	}
}

func TestGlyphVariesWithTitle(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Glyph("Title A"), Glyph("Title B"))
}

func TestRecordIDDeterministic(t *testing.T) {
	t.Parallel()

	createdAt := "2026-08-31T10:00:00Z"
	first := RecordID("A Study", "theory", createdAt)
	second := RecordID("A Study", "theory", createdAt)
	assert.Equal(t, first, second)

	// Every input participates in the name.
	assert.NotEqual(t, first, RecordID("Another Study", "theory", createdAt))
	assert.NotEqual(t, first, RecordID("A Study", "insight", createdAt))
	assert.NotEqual(t, first, RecordID("A Study", "theory", "2026-09-01T10:00:00Z"))
}

func TestMarkerFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-08-31_THEORY_001", Marker("2026-08-31", model.CategoryTheory, 1))
	assert.Equal(t, "2026-08-31_BREAKTHROUGH_042", Marker("2026-08-31", model.CategoryBreakthrough, 42))
	assert.Equal(t, "2026-08-31_THEORY_1042", Marker("2026-08-31", model.CategoryTheory, 1042))
}

func TestSequenceTableNext(t *testing.T) {
	t.Parallel()

	table := NewSequenceTable()
	assert.Equal(t, 1, table.Next("2026-08-31", model.CategoryTheory))
	assert.Equal(t, 2, table.Next("2026-08-31", model.CategoryTheory))

	// Independent per category and per day.
	assert.Equal(t, 1, table.Next("2026-08-31", model.CategoryInsight))
	assert.Equal(t, 1, table.Next("2026-09-01", model.CategoryTheory))
}

func TestSequenceTableSeed(t *testing.T) {
	t.Parallel()

	table := NewSequenceTable()
	table.Seed([]model.Record{
		{ChronoMarker: "2026-08-31_THEORY_003"},
		{ChronoMarker: "2026-08-31_THEORY_001"}, // lower marker never lowers the counter
		{ChronoMarker: "2026-08-31_INSIGHT_007"},
		{ChronoMarker: "not-a-marker"},
	})

	assert.Equal(t, 4, table.Next("2026-08-31", model.CategoryTheory))
	assert.Equal(t, 8, table.Next("2026-08-31", model.CategoryInsight))
	assert.Equal(t, 1, table.Next("2026-08-31", model.CategoryQuestion))
}

func TestSequenceTableConcurrentNext(t *testing.T) {
	t.Parallel()

	table := NewSequenceTable()
	const n = 50

	var mu sync.Mutex
	var wg sync.WaitGroup
	got := make([]int, 0, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := table.Next("2026-08-31", model.CategoryTheory)
			mu.Lock()
			got = append(got, seq)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Ints(got)
	require.Len(t, got, n)
	for i, seq := range got {
		assert.Equal(t, i+1, seq)
	}
}

func TestVSE(t *testing.T) {
	t.Parallel()

	significance := model.SignificanceAssessment{Overall: 0.8, MissionAlignment: 0.6}
	got := VSE(model.CategoryValidation, significance, 0.91, []string{"pilot"})

	assert.Equal(t, "validation", got.Intent)
	assert.InDelta(t, 0.7, got.Affect, 1e-12)
	assert.InDelta(t, 0.91, got.Certainty, 1e-12)
	assert.Equal(t, []string{"pilot"}, got.Tags)
}
