package encode

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// SequenceTable hands out the per-(date, category) counters behind chrono
// markers. It is the single piece of shared mutable state in the core:
// concurrent creation of two records on the same day in the same category
// must serialize here or their markers would collide.
type SequenceTable struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewSequenceTable creates an empty table.
func NewSequenceTable() *SequenceTable {
	return &SequenceTable{counts: map[string]int{}}
}

// Seed advances the counters past every chrono marker already present in the
// corpus, so a fresh process does not reissue markers taken by earlier runs.
func (t *SequenceTable) Seed(records []model.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, record := range records {
		date, category, seq, ok := parseMarker(record.ChronoMarker)
		if !ok {
			continue
		}
		key := date + "|" + category
		if seq > t.counts[key] {
			t.counts[key] = seq
		}
	}
}

// Next returns the next sequence number for the given date and category,
// starting at 1 each day.
func (t *SequenceTable) Next(date string, category model.Category) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := date + "|" + strings.ToUpper(string(category))
	t.counts[key]++
	return t.counts[key]
}

// Marker formats the temporal marker: <date>_<CATEGORY>_<sequence>.
func Marker(date string, category model.Category, seq int) string {
	return fmt.Sprintf("%s_%s_%03d", date, strings.ToUpper(string(category)), seq)
}

// parseMarker splits a chrono marker back into its parts. Markers carry the
// date first, so malformed ones are simply skipped during seeding.
func parseMarker(marker string) (date, category string, seq int, ok bool) {
	parts := strings.Split(marker, "_")
	if len(parts) != 3 {
		return "", "", 0, false
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, false
	}
	return parts[0], parts[1], seq, true
}
