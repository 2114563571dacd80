package guidance

import "alignr/internal/domain/matching"

const (
	LevelEntry       = "Entry Level"
	LevelJunior      = "Junior Analyst"
	LevelMid         = "Mid-Level Analyst"
	LevelNeedsReview = "Needs Review"
)

type LevelAssessment struct {
	SuggestedLevel string
	Reason         string
	Suggestions    []string
}

// AssessLevel suggests a job level from years of experience and a couple of
// signature analyst skills.
func AssessLevel(skills []string, experienceYears float64) LevelAssessment {
	set := matching.NewSkillSet(skills...)

	var level, reason string
	switch {
	case experienceYears < 1:
		level = LevelEntry
		reason = "You have limited experience, which is great for internships or junior roles."
	case experienceYears < 3 && set.Contains("sql") && set.Contains("excel"):
		level = LevelJunior
		reason = "You meet common expectations for junior analytical roles."
	case experienceYears >= 3 && set.Contains("python") && set.Contains("sql"):
		level = LevelMid
		reason = "Your technical skills and experience align with mid-level roles."
	default:
		level = LevelNeedsReview
		reason = "We'd need more context to recommend a level."
	}

	return LevelAssessment{
		SuggestedLevel: level,
		Reason:         reason,
		Suggestions: []string{
			"Add projects to show applied skills.",
			"Highlight leadership or mentoring to aim higher.",
		},
	}
}
