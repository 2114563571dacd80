// Package guidance implements the rule-based feedback behind each endpoint.
// Every function is pure; the keyword list and course table are passed in by
// the caller.
package guidance

import (
	"fmt"
	"math"

	"alignr/internal/domain/matching"
)

type JobScore struct {
	Score         int
	MatchedSkills []string
	MissingSkills []string
	Notes         string
}

// ScoreSkills scores the user's coverage of an already extracted job skill list.
func ScoreSkills(userSkills, jobSkills []string) JobScore {
	res := matching.Compare(userSkills, jobSkills)

	score := 0
	if res.Summary.TotalRequired > 0 {
		score = int(math.Round(100 * float64(res.Summary.TotalMatched) / float64(res.Summary.TotalRequired)))
	}

	return JobScore{
		Score:         score,
		MatchedSkills: res.MatchedNames(),
		MissingSkills: res.MissingNames(),
		Notes:         scoreNotes(score, res.Summary),
	}
}

func scoreNotes(score int, s matching.Summary) string {
	switch {
	case s.TotalRequired == 0:
		return "We couldn't find any known skills in this job ad. Try pasting the full description."
	case s.TotalMissing == 0:
		return "You're a strong match: every key tool mentioned in the job ad is already on your list."
	case score >= 50:
		return fmt.Sprintf("You're a strong match, but missing %s mentioned in the job ad.", countTools(s.TotalMissing))
	default:
		return fmt.Sprintf("You're missing %d of %d key tools mentioned in the job ad. Focus on closing these gaps first.", s.TotalMissing, s.TotalRequired)
	}
}

func countTools(n int) string {
	switch n {
	case 1:
		return "one key tool"
	case 2:
		return "two key tools"
	default:
		return fmt.Sprintf("%d key tools", n)
	}
}

const (
	StatusMatched = "Matched ✅"
	StatusMissing = "Missing ❌"

	matchedAction = "Ensure this is clearly mentioned on your CV and portfolio."
)

type GapRow struct {
	Skill  string
	Status string
	Action string
}

type GapTable struct {
	Rows          []GapRow
	MatchedSkills []string
	MissingSkills []string
	Summary       matching.Summary
}

// BuildGapTable lists matched skills first, then missing ones, each with a
// suggested action.
func BuildGapTable(userSkills, jobSkills []string) GapTable {
	res := matching.Compare(userSkills, jobSkills)
	matched := res.MatchedNames()
	missing := res.MissingNames()

	rows := make([]GapRow, 0, len(matched)+len(missing))
	for _, skill := range matched {
		rows = append(rows, GapRow{Skill: skill, Status: StatusMatched, Action: matchedAction})
	}
	for _, skill := range missing {
		rows = append(rows, GapRow{
			Skill:  skill,
			Status: StatusMissing,
			Action: fmt.Sprintf("Find a beginner course on %s or apply it in a project to gain experience.", skill),
		})
	}

	return GapTable{
		Rows:          rows,
		MatchedSkills: matched,
		MissingSkills: missing,
		Summary:       res.Summary,
	}
}

type SkillsGapCheck struct {
	JobSkillsFound []string
	MatchedSkills  []string
	MissingSkills  []string
}

// CheckFoundSkills compares the user's skills with the keywords already found
// in a job description.
func CheckFoundSkills(jobSkillsFound, userSkills []string) SkillsGapCheck {
	res := matching.Compare(userSkills, jobSkillsFound)
	if jobSkillsFound == nil {
		jobSkillsFound = []string{}
	}
	return SkillsGapCheck{
		JobSkillsFound: jobSkillsFound,
		MatchedSkills:  res.Matched.Tokens(),
		MissingSkills:  res.Missing.Tokens(),
	}
}
