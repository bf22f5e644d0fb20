package assess

import (
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// Expected validation-type labels per category. Conceptual categories carry
// a theoretical expectation; evidence-bearing categories expect pilot or
// validated results; everything else is preliminary.
const (
	validationTheoretical = "theoretical"
	validationPilot       = "pilot"
	validationValidated   = "validated"
	validationPreliminary = "preliminary"
)

var rigorTerms = []string{"protocol", "control", "sample", "cohort"}

// Evidence estimates validation strength from the abstract and the declared
// category, and sets the reproducibility flag from the presence of
// methodology text.
func Evidence(title, abstract string, findings []string, category model.Category, methodology string) model.EvidenceAssessment {
	lowerAbstract := strings.ToLower(abstract)

	support := 0.4
	if strings.Contains(lowerAbstract, "experiment") {
		support += 0.2
	}
	if strings.Contains(lowerAbstract, "field test") {
		support += 0.2
	}
	if strings.Contains(lowerAbstract, "replicated") || strings.Contains(lowerAbstract, "reproduced") {
		support += 0.2
	}

	validationType := expectedValidationType(category)
	switch validationType {
	case validationValidated:
		if support < 0.8 {
			support = 0.8
		}
	case validationPilot:
		if support < 0.7 {
			support = 0.7
		}
	}
	support = clamp01(support)

	lowerMethod := strings.ToLower(methodology)
	rigor := 0.3
	if methodology != "" {
		rigor += 0.4
	}
	rigor = clamp01(rigor + 0.1*float64(countPresent(lowerMethod, rigorTerms)))

	references := quantifiedFindings(findings)
	quantification := clamp01(0.4 + 0.15*float64(len(references)))

	return model.EvidenceAssessment{
		SupportLevel:     support,
		MethodologyRigor: rigor,
		Quantification:   quantification,
		ValidationType:   validationType,
		Reproducible:     methodology != "",
		References:       references,
	}
}

func expectedValidationType(category model.Category) string {
	switch category {
	case model.CategoryTheory, model.CategoryQuestion, model.CategoryInsight:
		return validationTheoretical
	case model.CategoryValidation:
		return validationValidated
	case model.CategoryApplication:
		return validationPilot
	default:
		return validationPreliminary
	}
}

// quantifiedFindings returns the findings that carry a measurable claim:
// a digit or a percentage.
func quantifiedFindings(findings []string) []string {
	var out []string
	for _, finding := range findings {
		if strings.ContainsAny(finding, "0123456789%") {
			out = append(out, finding)
		}
	}
	return out
}
