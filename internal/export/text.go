package export

import (
	"fmt"
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Text renders a compact plain-text listing, one block per record.
func (r *Renderer) Text(records []model.Record) string {
	var b strings.Builder

	for _, record := range records {
		fmt.Fprintf(&b, "[%s] %s\n", record.ChronoMarker, record.Title)
		fmt.Fprintf(&b, "  category=%s routing=%s priority=%.2f status=%s\n",
			record.Category, record.RoutingDecision, record.Priority, record.Status)
		fmt.Fprintf(&b, "  id=%s glyph=%s\n", record.ID, record.Glyph)
		b.WriteString("\n")
	}

	return b.String()
}

// Summary renders the one-line result printed after a create.
func (r *Renderer) Summary(record *model.Record) string {
	return fmt.Sprintf("%s %s → %s (priority %.2f)",
		record.Glyph, record.Title, r.label(string(record.RoutingDecision)), record.Priority)
}
