package model

// TimeFormat is the textual form used for creation timestamps. Timestamps are
// stored as strings so that a load/save cycle round-trips byte-identically.
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// Record is the assembled, scored, routed unit produced per submission.
// A Record is fully populated in one atomic step; afterwards only Status and
// Tags may be mutated in place.
type Record struct {
	ID       string   `json:"record_id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Abstract string   `json:"abstract"`
	Findings []string `json:"findings"`

	Coherence    CoherenceAssessment    `json:"coherence"`
	Evidence     EvidenceAssessment     `json:"evidence"`
	Originality  OriginalityAssessment  `json:"originality"`
	Significance SignificanceAssessment `json:"significance"`
	Linkage      LinkageAssessment      `json:"linkage"`

	RoutingDecision RoutingDecision `json:"routing_decision"`
	Priority        float64         `json:"priority"`
	Justification   string          `json:"justification"`

	Glyph        string      `json:"glyph"`
	ChronoMarker string      `json:"chrono_marker"`
	VSE          VSEEncoding `json:"vse"`

	Status      Status   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source"`
	Methodology string   `json:"methodology,omitempty"`
}

// VSEEncoding is a lossy, fixed-shape summary of a Record for downstream
// systems that cannot consume the full record.
type VSEEncoding struct {
	Intent    string   `json:"intent"`    // category label
	Affect    float64  `json:"affect"`    // derived from significance/mission scores
	Certainty float64  `json:"certainty"` // the computed priority
	Tags      []string `json:"tags,omitempty"`
}
