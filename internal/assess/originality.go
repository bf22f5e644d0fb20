package assess

import (
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

var (
	noveltyTerms = []string{
		"first", "novel", "new", "innovative", "original", "unprecedented",
		"unique", "groundbreaking", "pioneering",
	}

	// Title keywords that mark a paradigm-shift claim regardless of category.
	paradigmTitleTerms = []string{
		"paradigm", "revolutionary", "breakthrough", "redefines", "transforms",
	}

	contributionMarkers = []string{"first", "only", "unique", "novel"}
)

// minimum distinct unique-contribution findings that flag a paradigm shift
const paradigmContributionThreshold = 3

// Originality computes a novelty score and the paradigm-shift flag. The flag
// is set when the category is breakthrough, when a paradigm keyword appears
// in the title, or when the findings carry three or more distinct unique
// contributions.
func Originality(title, abstract string, findings []string, category model.Category) model.OriginalityAssessment {
	text := titleAbstract(title, abstract)

	density := clamp01(0.5 + 0.1*float64(countPresent(text, noveltyTerms)))

	contributions := uniqueContributions(findings)

	shift := category == model.CategoryBreakthrough ||
		anyPresent(strings.ToLower(title), paradigmTitleTerms) ||
		len(contributions) >= paradigmContributionThreshold

	reported := contributions
	if len(reported) == 0 {
		// Fall back to the leading findings so the assessment always names
		// what the work claims to add.
		if len(findings) > 2 {
			reported = findings[:2]
		} else {
			reported = findings
		}
	}

	distinctiveness := clamp01(0.4 + 0.15*float64(len(reported)))

	return model.OriginalityAssessment{
		Score:               (density + distinctiveness) / 2,
		NoveltyDensity:      density,
		Distinctiveness:     distinctiveness,
		ParadigmShift:       shift,
		UniqueContributions: reported,
	}
}

// uniqueContributions returns the findings that explicitly claim a unique
// contribution.
func uniqueContributions(findings []string) []string {
	var out []string
	for _, finding := range findings {
		if anyPresent(strings.ToLower(finding), contributionMarkers) {
			out = append(out, finding)
		}
	}
	return out
}
