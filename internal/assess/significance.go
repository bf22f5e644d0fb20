package assess

import "github.com/PaniclandUSA/Esper-Thesis/internal/model"

// Weighted keyword-density buckets. High-weight terms signal the dimension
// directly; medium-weight terms are supporting vocabulary. Everything else
// carries zero weight.
const (
	highTermWeight   = 0.15
	mediumTermWeight = 0.08
)

// MissionFloor is the mission-alignment score of a submission containing no
// mission-relevant vocabulary at all. Such a submission can never route to
// mission_critical.
const MissionFloor = 0.2

var (
	academicHighTerms   = []string{"theory", "framework", "hypothesis", "empirical", "peer-reviewed"}
	academicMediumTerms = []string{"model", "research", "study", "analysis", "validation"}

	practicalHighTerms   = []string{"deployment", "production", "classroom", "rollout", "real-world"}
	practicalMediumTerms = []string{"application", "implementation", "tooling", "practical", "pipeline"}

	missionHighTerms   = []string{"literacy", "reading", "comprehension", "liberation"}
	missionMediumTerms = []string{"education", "learning", "teaching", "students", "learners", "narrative", "accessible"}

	domainMarkers = []struct {
		term   string
		domain string
	}{
		{"artificial intelligence", "ai"},
		{"machine learning", "ai"},
		{"semantic", "linguistics"},
		{"language", "linguistics"},
		{"education", "education"},
		{"teaching", "education"},
		{"cognitive", "psychology"},
		{"emotion", "psychology"},
		{"algorithm", "computer_science"},
		{"software", "computer_science"},
	}
)

// Significance computes academic, practical, and mission-alignment sub-scores
// from weighted keyword-density buckets. The overall score is the mean of the
// three sub-scores.
func Significance(title, abstract string) model.SignificanceAssessment {
	text := titleAbstract(title, abstract)

	academic := bucketScore(text, 0.3, academicHighTerms, academicMediumTerms)
	practical := bucketScore(text, 0.3, practicalHighTerms, practicalMediumTerms)
	mission := bucketScore(text, MissionFloor, missionHighTerms, missionMediumTerms)

	var domains []string
	seen := map[string]bool{}
	for _, marker := range domainMarkers {
		if !seen[marker.domain] && anyPresent(text, []string{marker.term}) {
			seen[marker.domain] = true
			domains = append(domains, marker.domain)
		}
	}

	return model.SignificanceAssessment{
		Overall:          (academic + practical + mission) / 3,
		Academic:         academic,
		Practical:        practical,
		MissionAlignment: mission,
		Domains:          domains,
	}
}

func bucketScore(text string, base float64, high, medium []string) float64 {
	score := base
	score += highTermWeight * float64(countPresent(text, high))
	score += mediumTermWeight * float64(countPresent(text, medium))
	return clamp01(score)
}
