package assess

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

var (
	foundationTerms = []string{"builds on", "extends", "based on", "following", "prior"}

	breakthroughTerms = []string{
		"first", "novel", "unprecedented", "breakthrough", "revolutionary",
		"paradigm", "fundamental", "groundbreaking", "transforms",
	}

	dependencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`requires (\w+)`),
		regexp.MustCompile(`depends on (\w+)`),
		regexp.MustCompile(`assumes (\w+)`),
	}
)

// Coherence estimates internal logical consistency, clarity of definitions,
// reliance on prior foundations, and breakthrough likelihood from lexical
// cues. The overall score is the unweighted mean of the four sub-scores.
func Coherence(title, abstract string, findings []string) model.CoherenceAssessment {
	lowerAbstract := strings.ToLower(abstract)
	text := titleAbstract(title, abstract)

	logic := 0.8
	if strings.Contains(lowerAbstract, "because") || strings.Contains(lowerAbstract, "therefore") {
		logic += 0.1
	}
	if strings.Contains(lowerAbstract, "however") || strings.Contains(lowerAbstract, "although") {
		logic += 0.1
	}
	logic = clamp01(logic)

	foundation := clamp01(0.5 + 0.1*float64(countPresent(lowerAbstract, foundationTerms)))

	clarity := 0.7
	if len(strings.Split(abstract, ".")) >= 3 {
		clarity += 0.15
	}
	if len(findings) >= 2 {
		clarity += 0.15
	}
	clarity = clamp01(clarity)

	breakthrough := clamp01(0.3 + 0.15*float64(countPresent(text, breakthroughTerms)))

	var deps []string
	seen := map[string]bool{}
	for _, pattern := range dependencyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lowerAbstract, -1) {
			if !seen[match[1]] {
				seen[match[1]] = true
				deps = append(deps, match[1])
			}
		}
	}
	sort.Strings(deps)

	var issues []string
	if strings.Contains(lowerAbstract, "contradiction") {
		issues = append(issues, "potential internal contradiction detected")
	}
	if strings.Contains(lowerAbstract, "unclear") || strings.Contains(lowerAbstract, "ambiguous") {
		issues = append(issues, "conceptual ambiguity noted")
	}

	return model.CoherenceAssessment{
		Score:                 (logic + clarity + foundation + breakthrough) / 4,
		LogicalConsistency:    logic,
		ConceptualClarity:     clarity,
		FoundationStrength:    foundation,
		BreakthroughPotential: breakthrough,
		Dependencies:          deps,
		Issues:                issues,
	}
}
