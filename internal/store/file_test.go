package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "research_db.json"), time.Minute)
}

func TestLoadMissingFileIsEmptyCorpus(t *testing.T) {
	t.Parallel()

	records, err := tempStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReplaceThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	in := []model.Record{
		{
			ID:           "rec-1",
			Title:        "Spacing Effects",
			Category:     model.CategoryTheory,
			Abstract:     "spaced exposure improves retention",
			Findings:     []string{"85% improvement"},
			Priority:     0.8500000000000001, // awkward float must survive the trip
			Glyph:        "◆◇●○",
			ChronoMarker: "2026-08-31_THEORY_001",
			Status:       model.StatusDraft,
			CreatedAt:    "2026-08-31T10:00:00Z",
			Coherence:    model.CoherenceAssessment{Score: 0.925, LogicalConsistency: 1.0 / 3.0},
		},
	}

	require.NoError(t, store.Replace(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMalformedFileIsCorpusError(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, model.IsCorpus(err))

	var cerr *model.CorpusError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, store.Path(), cerr.Path)
}

func TestReplaceIsWholeFile(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	require.NoError(t, store.Replace([]model.Record{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Replace([]model.Record{{ID: "c"}}))

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestReplaceCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "db.json")
	store := NewFileStore(path, time.Minute)

	require.NoError(t, store.Replace([]model.Record{{ID: "a"}}))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestReplaceLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "db.json"), time.Minute)
	require.NoError(t, store.Replace([]model.Record{{ID: "a"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-")
	}
}

func TestLoadCacheDoesNotLeakMutations(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	require.NoError(t, store.Replace([]model.Record{{ID: "a", Title: "original"}}))

	first, err := store.Load()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "original", second[0].Title)
}
