// Package route combines the five assessments into a priority number and a
// routing decision. The rule list is evaluated top to bottom and the first
// satisfied guard wins; the order is load-bearing and must not be rearranged
// by apparent specificity.
package route

import (
	"fmt"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Fixed priority weights.
const (
	coherenceWeight    = 0.20
	evidenceWeight     = 0.20
	originalityWeight  = 0.20
	significanceWeight = 0.30
	missionWeight      = 0.10
)

// Additive bonuses applied before clamping.
const (
	paradigmShiftBonus = 0.05
	breakthroughBonus  = 0.10
	connectivityBonus  = 0.05
)

// connection count that earns the connectivity bonus
const bonusConnectionCount = 5

// Guard thresholds, in rule order.
const (
	missionCriticalPriority = 0.95
	missionCriticalMission  = 0.8
	reviewPriority          = 0.85
	reviewSupportCeiling    = 0.6
	synthesisConnections    = 3
	activePriority          = 0.80
)

// Input carries everything the router reads. Status matters only for the
// archive rule: a re-scored published record routes there when nothing
// stronger fires.
type Input struct {
	Coherence    model.CoherenceAssessment
	Evidence     model.EvidenceAssessment
	Originality  model.OriginalityAssessment
	Significance model.SignificanceAssessment
	Linkage      model.LinkageAssessment
	Category     model.Category
	Status       model.Status
}

// Outcome is the routing result.
type Outcome struct {
	Decision      model.RoutingDecision
	Priority      float64
	Justification string
}

// Route computes the priority and picks the first matching decision rule.
func Route(in Input) Outcome {
	priority := in.Coherence.Score*coherenceWeight +
		in.Evidence.SupportLevel*evidenceWeight +
		in.Originality.Score*originalityWeight +
		in.Significance.Overall*significanceWeight +
		in.Significance.MissionAlignment*missionWeight

	if in.Originality.ParadigmShift {
		priority += paradigmShiftBonus
	}
	if in.Category == model.CategoryBreakthrough {
		priority += breakthroughBonus
	}
	connections := len(in.Linkage.Connections)
	if connections >= bonusConnectionCount {
		priority += connectivityBonus
	}
	priority = clamp01(priority)

	mission := in.Significance.MissionAlignment
	support := in.Evidence.SupportLevel

	var decision model.RoutingDecision
	var justification string
	switch {
	case priority >= missionCriticalPriority && mission > missionCriticalMission:
		decision = model.RouteMissionCritical
		justification = fmt.Sprintf("mission-critical: priority %.2f with mission alignment %.2f", priority, mission)
	case priority >= reviewPriority && support < reviewSupportCeiling:
		decision = model.RouteReviewNeeded
		justification = fmt.Sprintf("review needed: priority %.2f but evidence support only %.2f", priority, support)
	case connections >= synthesisConnections:
		decision = model.RouteSynthesisNeeded
		justification = fmt.Sprintf("synthesis needed: %d connections to existing records", connections)
	case priority >= activePriority:
		decision = model.RouteActiveDevelopment
		justification = fmt.Sprintf("active development: priority %.2f", priority)
	case in.Status == model.StatusPublished:
		decision = model.RouteArchive
		justification = fmt.Sprintf("archive: published record at priority %.2f", priority)
	default:
		decision = model.RouteDocumentation
		justification = fmt.Sprintf("documentation: priority %.2f", priority)
	}

	return Outcome{
		Decision:      decision,
		Priority:      priority,
		Justification: justification,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
