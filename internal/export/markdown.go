package export

import (
	"fmt"
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Markdown renders the full findings document.
func (r *Renderer) Markdown(records []model.Record) string {
	var b strings.Builder

	b.WriteString("# Research Findings\n\n")
	fmt.Fprintf(&b, "%d records\n\n", len(records))

	for _, record := range records {
		fmt.Fprintf(&b, "## %s %s\n\n", record.Glyph, record.Title)
		fmt.Fprintf(&b, "**Category**: %s | **Routing**: %s | **Priority**: %.2f | **Status**: %s\n\n",
			r.label(string(record.Category)),
			r.label(string(record.RoutingDecision)),
			record.Priority,
			r.label(string(record.Status)),
		)
		fmt.Fprintf(&b, "`%s` · `%s`\n\n", record.ChronoMarker, record.ID)
		fmt.Fprintf(&b, "%s\n\n", record.Abstract)

		b.WriteString("**Key Findings**:\n\n")
		for _, finding := range record.Findings {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "**Assessment**: coherence %.2f · evidence %.2f · originality %.2f · significance %.2f · linkage %.2f\n\n",
			record.Coherence.Score,
			record.Evidence.SupportLevel,
			record.Originality.Score,
			record.Significance.Overall,
			record.Linkage.Score,
		)
		fmt.Fprintf(&b, "> %s\n\n", record.Justification)

		if len(record.Linkage.Connections) > 0 {
			fmt.Fprintf(&b, "**Connections** (%d): themes %s\n\n",
				len(record.Linkage.Connections),
				strings.Join(record.Linkage.Themes, ", "),
			)
		}
		if len(record.Tags) > 0 {
			fmt.Fprintf(&b, "**Tags**: %s\n\n", strings.Join(record.Tags, ", "))
		}
		b.WriteString("---\n\n")
	}

	if r.includeFooter {
		footer(&b)
	}
	return b.String()
}
