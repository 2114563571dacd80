package guidance

import (
	"errors"
	"fmt"
	"strings"

	"alignr/internal/domain/matching"
)

const (
	IntakeCVSupport         = "cv_support"
	IntakeCareerExploration = "career_exploration"
	IntakeJobSearch         = "job_search"
	IntakeUnsure            = "unsure"
)

type Intake struct {
	Type     string
	NextStep string
}

// ClassifyGoal routes a free-text goal to one of the intake tracks. The
// first matching track wins.
func ClassifyGoal(goal string) Intake {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "cv"):
		return Intake{Type: IntakeCVSupport, NextStep: "Upload your CV or list your experience. I'll guide you to improve each section."}
	case strings.Contains(g, "career") || strings.Contains(g, "not sure"):
		return Intake{Type: IntakeCareerExploration, NextStep: "Let's start with a quick personality and interests quiz."}
	case strings.Contains(g, "job") || strings.Contains(g, "applying"):
		return Intake{Type: IntakeJobSearch, NextStep: "Tell me what kinds of jobs you're applying for. I'll help you target each one."}
	default:
		return Intake{Type: IntakeUnsure, NextStep: "Let's clarify your goal. Do you need help with your CV, finding a direction, or preparing for job applications?"}
	}
}

type QuizResult struct {
	PersonalitySummary string
	CareerSuggestion   string
	NextStep           string
}

func ScoreQuiz(answers []string) QuizResult {
	var suggestion string
	switch {
	case containsExact(answers, "creative"):
		suggestion = "You may thrive in UX design, content creation, or branding roles."
	case containsExact(answers, "logical"):
		suggestion = "Data analysis, operations, or finance roles could fit you well."
	default:
		suggestion = "You might enjoy generalist roles. Let's explore your skills further."
	}
	return QuizResult{
		PersonalitySummary: "Based on your responses, we've identified core traits.",
		CareerSuggestion:   suggestion,
		NextStep:           "Would you like job ideas in that area, or help building a CV for it?",
	}
}

type SWOT struct {
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Threats       []string
}

type Discovery struct {
	PersonalityTraits []string
	Interests         []string
	Skills            []string
	SuggestedCareers  []string
	SWOT              SWOT
}

func DiscoverCareers(personality, interests, skills []string) Discovery {
	var roles []string
	switch {
	case containsExact(personality, "creative") && containsExact(interests, "design"):
		roles = []string{"UX Designer", "Graphic Designer"}
	case containsExact(personality, "analytical") && containsExact(interests, "data"):
		roles = []string{"Data Analyst", "Business Intelligence Analyst"}
	default:
		roles = []string{"Project Coordinator", "Customer Success Associate"}
	}

	return Discovery{
		PersonalityTraits: nonNil(personality),
		Interests:         nonNil(interests),
		Skills:            nonNil(skills),
		SuggestedCareers:  roles,
		SWOT: SWOT{
			Strengths:     []string{"Strong analytical mindset", "Good communication"},
			Weaknesses:    []string{"Lack of industry experience"},
			Opportunities: []string{"High demand in tech and creative sectors"},
			Threats:       []string{"Need to quickly upskill in modern tools"},
		},
	}
}

var ErrExperienceTooLow = errors.New("experience too low for target role")

// ExperienceError carries the user-facing reason a career plan was refused.
type ExperienceError struct {
	RequiredYears float64
	Message       string
}

func (e *ExperienceError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *ExperienceError) Unwrap() error {
	return ErrExperienceTooLow
}

const (
	PathSenior       = "Senior Role"
	PathIntermediate = "Intermediate Role"
	PathEntry        = "Entry-Level Role"

	weeksPerSkill = 4
)

type PlanInput struct {
	GoalRole        string
	CurrentSkills   []string
	RequiredSkills  []string
	ExperienceYears float64
}

type PlanStep struct {
	Skill           string
	SuggestedCourse string
	Duration        string
	HoursPerWeek    int
}

type CareerPlan struct {
	GoalRole          string
	PathLevel         string
	MissingSkills     []string
	EstimatedWeeks    int
	RealisticTimeline string
	Steps             []PlanStep
	FinalStep         string
}

// PlanCareer builds a learning plan for the skills the user still lacks.
// Senior and mid-level goals are refused with an *ExperienceError when the
// user's experience is below the usual bar.
func PlanCareer(in PlanInput) (CareerPlan, error) {
	role := strings.ToLower(in.GoalRole)

	var level, timeline string
	switch {
	case strings.Contains(role, "senior"):
		if in.ExperienceYears < 5 {
			return CareerPlan{}, &ExperienceError{
				RequiredYears: 5,
				Message:       "Senior roles typically require 5+ years of experience. Try targeting a mid-level role first.",
			}
		}
		level = PathSenior
		timeline = "12-24 months with leadership projects and real-world delivery."
	case strings.Contains(role, "mid") || strings.Contains(role, "associate"):
		if in.ExperienceYears < 2 {
			return CareerPlan{}, &ExperienceError{
				RequiredYears: 2,
				Message:       "Mid-level roles usually require at least 2 years of experience. Consider an entry-level path first.",
			}
		}
		level = PathIntermediate
		timeline = "6-12 months with real projects and collaboration experience."
	default:
		level = PathEntry
		timeline = "3-6 months with focused learning and practical projects."
	}

	missing := matching.Compare(in.CurrentSkills, in.RequiredSkills).MissingNames()

	steps := make([]PlanStep, 0, len(missing))
	for _, skill := range missing {
		steps = append(steps, PlanStep{
			Skill:           skill,
			SuggestedCourse: fmt.Sprintf("%s Fundamentals (Coursera)", skill),
			Duration:        "3-4 weeks",
			HoursPerWeek:    4,
		})
	}

	return CareerPlan{
		GoalRole:          in.GoalRole,
		PathLevel:         level,
		MissingSkills:     missing,
		EstimatedWeeks:    len(missing) * weeksPerSkill,
		RealisticTimeline: timeline,
		Steps:             steps,
		FinalStep:         "Update CV and portfolio with projects demonstrating these skills",
	}, nil
}

func containsExact(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
