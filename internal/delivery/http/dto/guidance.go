package dto

type CVFeedbackRequest struct {
	CVText string `json:"cv_text"`
}

type CVFeedbackResponse struct {
	FeedbackPoints  []string `json:"feedback_points"`
	PromptQuestions []string `json:"prompt_questions"`
}

type GuidanceIntakeRequest struct {
	Goal string `json:"goal"`
}

type GuidanceIntakeResponse struct {
	Type     string `json:"type"`
	NextStep string `json:"next_step"`
}

type CareerQuizRequest struct {
	Answers []string `json:"answers"`
}

type CareerQuizResponse struct {
	PersonalitySummary string `json:"personality_summary"`
	CareerSuggestion   string `json:"career_suggestion"`
	NextStep           string `json:"next_step"`
}

type CareerDiscoveryRequest struct {
	Personality []string `json:"personality"`
	Interests   []string `json:"interests"`
	Skills      []string `json:"skills"`
}

type SWOTResponse struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

type CareerDiscoveryResponse struct {
	PersonalityTraits []string     `json:"personality_traits"`
	Interests         []string     `json:"interests"`
	Skills            []string     `json:"skills"`
	SuggestedCareers  []string     `json:"suggested_careers"`
	SWOTSummary       SWOTResponse `json:"swot_summary"`
}

type CareerPlanRequest struct {
	GoalRole        string   `json:"goal_role"`
	CurrentSkills   []string `json:"current_skills"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceYears float64  `json:"experience_years"`
}

type PlanStepResponse struct {
	Skill           string `json:"skill"`
	SuggestedCourse string `json:"suggested_course"`
	Duration        string `json:"duration"`
	HoursPerWeek    int    `json:"hours_per_week"`
}

type CareerPlanResponse struct {
	GoalRole          string             `json:"goal_role"`
	PathLevel         string             `json:"path_level"`
	MissingSkills     []string           `json:"missing_skills"`
	EstimatedWeeks    int                `json:"estimated_weeks"`
	RealisticTimeline string             `json:"realistic_timeline"`
	StepByStepPlan    []PlanStepResponse `json:"step_by_step_plan"`
	FinalStep         string             `json:"final_step"`
}

type JobLevelValidationRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
}

type JobLevelValidationResponse struct {
	SuggestedLevel string   `json:"suggested_level"`
	Reason         string   `json:"reason"`
	Suggestions    []string `json:"suggestions"`
}

type JobTrackerRequest struct {
	Applications []map[string]any `json:"applications"`
}

type JobTrackerResponse struct {
	Applications []map[string]any `json:"applications"`
}

type CareerPlanRejection struct {
	GoalRole        string  `json:"goal_role"`
	RequiredYears   float64 `json:"required_years"`
	ExperienceYears float64 `json:"experience_years"`
}
