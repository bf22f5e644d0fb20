package encode

import "github.com/PaniclandUSA/Esper-Thesis/internal/model"

// VSE builds the compact semantic encoding: a lossy, fixed-shape tuple for
// downstream systems that cannot consume the full record. Affect averages
// the significance and mission scores; the priority stands in for certainty.
func VSE(category model.Category, significance model.SignificanceAssessment, priority float64, tags []string) model.VSEEncoding {
	return model.VSEEncoding{
		Intent:    string(category),
		Affect:    (significance.Overall + significance.MissionAlignment) / 2,
		Certainty: priority,
		Tags:      tags,
	}
}
