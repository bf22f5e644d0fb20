// Package export renders record collections as Markdown, JSON, or plain
// text. Rendering is read-only plumbing: scores and fingerprints are printed
// exactly as stored, never recomputed.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer formats record collections.
type Renderer struct {
	includeFooter bool
	titleCaser    cases.Caser
}

// NewRenderer creates a renderer. The footer line on Markdown output can be
// disabled for embedding into larger documents.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		titleCaser:    cases.Title(language.English),
	}
}

// label turns a snake_case enum value into a display label.
func (r *Renderer) label(value string) string {
	return r.titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

// JSON marshals records as the same flat list the corpus file holds.
func (r *Renderer) JSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal records")
	}
	return data, nil
}

func footer(b *strings.Builder) {
	fmt.Fprintf(b, "\n---\n_Generated by esper-thesis_\n")
}
