package model

// Category classifies the kind of research contribution a submission declares.
// The set is closed; a Record's category never changes after creation and it
// seeds dimension-specific scoring biases.
type Category string

const (
	CategoryTheory       Category = "theory"
	CategoryValidation   Category = "validation"
	CategoryApplication  Category = "application"
	CategoryInsight      Category = "insight"
	CategorySynthesis    Category = "synthesis"
	CategoryQuestion     Category = "question"
	CategoryBreakthrough Category = "breakthrough"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryTheory,
		CategoryValidation,
		CategoryApplication,
		CategoryInsight,
		CategorySynthesis,
		CategoryQuestion,
		CategoryBreakthrough,
	}
}

// IsValid reports whether c is one of the seven known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// RoutingDecision is the classification outcome assigned by the router.
type RoutingDecision string

const (
	RouteMissionCritical   RoutingDecision = "mission_critical"
	RouteReviewNeeded      RoutingDecision = "review_needed"
	RouteSynthesisNeeded   RoutingDecision = "synthesis_needed"
	RouteActiveDevelopment RoutingDecision = "active_development"
	RouteArchive           RoutingDecision = "archive"
	RouteDocumentation     RoutingDecision = "documentation"
)

// RoutingDecisions lists the six possible outcomes.
func RoutingDecisions() []RoutingDecision {
	return []RoutingDecision{
		RouteMissionCritical,
		RouteReviewNeeded,
		RouteSynthesisNeeded,
		RouteActiveDevelopment,
		RouteArchive,
		RouteDocumentation,
	}
}

// Status tracks a Record through its lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusValidated Status = "validated"
	StatusPublished Status = "published"
)

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. Transitions are one-directional (draft → validated → published)
// except the explicit published → draft correction path.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusValidated
	case StatusValidated:
		return next == StatusPublished
	case StatusPublished:
		return next == StatusDraft
	default:
		return false
	}
}
