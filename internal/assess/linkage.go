package assess

import (
	"github.com/PaniclandUSA/Esper-Thesis/internal/connect"
	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// connection count at which the linkage score saturates
const linkageSaturation = 5

// Linkage folds the connection detector's output into an assessment. It sits
// logically downstream of the other four scorers but is still a pure function
// of its input: same detection result, same assessment.
func Linkage(detection connect.Result) model.LinkageAssessment {
	score := float64(len(detection.Connections)) / linkageSaturation
	breadth := float64(len(detection.Themes)) / linkageSaturation

	return model.LinkageAssessment{
		Score:          clamp01(score),
		ThemeBreadth:   clamp01(breadth),
		Connections:    detection.Connections,
		Themes:         detection.Themes,
		Contradictions: detection.Contradictions,
	}
}
