package dto

type ScoreJobRequest struct {
	UserSkills     []string `json:"user_skills"`
	JobDescription string   `json:"job_description"`
}

type SkillsGapTableRequest struct {
	UserSkills []string `json:"user_skills"`
	JobSkills  []string `json:"job_skills"`
}

type ExtractJobSkillsRequest struct {
	JobDescription string `json:"job_description"`
}

type CheckSkillsGapRequest struct {
	JobDescription string   `json:"job_description"`
	UserSkills     []string `json:"user_skills"`
}

type RecommendLearningRequest struct {
	MissingSkills []string `json:"missing_skills"`
}
