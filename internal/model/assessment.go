package model

// CoherenceAssessment evaluates internal logical consistency and conceptual
// soundness. Score is the unweighted mean of the four sub-scores.
type CoherenceAssessment struct {
	Score                 float64  `json:"score"`
	LogicalConsistency    float64  `json:"logical_consistency"`
	ConceptualClarity     float64  `json:"conceptual_clarity"`
	FoundationStrength    float64  `json:"foundation_strength"`
	BreakthroughPotential float64  `json:"breakthrough_potential"`
	Dependencies          []string `json:"dependencies,omitempty"` // terms the work declares it requires/assumes
	Issues                []string `json:"issues,omitempty"`
}

// EvidenceAssessment evaluates validation strength. ValidationType is the
// expected validation label for the declared category, not a measurement.
type EvidenceAssessment struct {
	SupportLevel     float64  `json:"support_level"`
	MethodologyRigor float64  `json:"methodology_rigor"`
	Quantification   float64  `json:"quantification"`
	ValidationType   string   `json:"validation_type"`
	Reproducible     bool     `json:"reproducible"`
	References       []string `json:"references,omitempty"` // findings carrying measurable evidence
}

// OriginalityAssessment evaluates novelty and innovation.
type OriginalityAssessment struct {
	Score               float64  `json:"score"`
	NoveltyDensity      float64  `json:"novelty_density"`
	Distinctiveness     float64  `json:"distinctiveness"`
	ParadigmShift       bool     `json:"paradigm_shift"`
	UniqueContributions []string `json:"unique_contributions,omitempty"`
}

// SignificanceAssessment evaluates reach. Overall is the mean of the three
// sub-scores; MissionAlignment additionally feeds the router directly.
type SignificanceAssessment struct {
	Overall          float64  `json:"overall"`
	Academic         float64  `json:"academic"`
	Practical        float64  `json:"practical"`
	MissionAlignment float64  `json:"mission_alignment"`
	Domains          []string `json:"domains,omitempty"`
}

// LinkageAssessment records how a submission relates to the existing corpus.
// Contradictions is a declared extension point; the current detector always
// leaves it empty.
type LinkageAssessment struct {
	Score          float64      `json:"score"`
	ThemeBreadth   float64      `json:"theme_breadth"`
	Connections    []Connection `json:"connections,omitempty"`
	Themes         []string     `json:"themes,omitempty"`
	Contradictions []string     `json:"contradictions,omitempty"`
}

// Connection is a derived keyword-overlap relation to a prior Record. It is
// never stored as a first-class entity; it exists only inside the linkage
// assessment of the record that triggered the detection.
type Connection struct {
	RecordID     string   `json:"record_id"`
	Strength     float64  `json:"strength"`
	SharedThemes []string `json:"shared_themes,omitempty"`
}
