package model

import "unicode/utf8"

// Limits applied before any scorer runs.
const (
	TitleMaxRunes    = 200
	AbstractMinRunes = 20
)

// Submission is the raw input to the assessment pipeline.
type Submission struct {
	Title       string   `json:"title" yaml:"title"`
	Category    Category `json:"category" yaml:"category"`
	Abstract    string   `json:"abstract" yaml:"abstract"`
	Findings    []string `json:"findings" yaml:"findings"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Methodology string   `json:"methodology,omitempty" yaml:"methodology,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Validate checks the length and emptiness constraints. It returns a
// *ValidationError describing the first violation, or nil. Scorers never see
// a submission that fails validation.
func (s Submission) Validate() *ValidationError {
	if s.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(s.Title) > TitleMaxRunes {
		return &ValidationError{Field: "title", Reason: "exceeds maximum length"}
	}
	if utf8.RuneCountInString(s.Abstract) < AbstractMinRunes {
		return &ValidationError{Field: "abstract", Reason: "below minimum length"}
	}
	if len(s.Findings) == 0 {
		return &ValidationError{Field: "findings", Reason: "must not be empty"}
	}
	if !s.Category.IsValid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	return nil
}
