package dto

import "alignr/internal/catalog"

type ScoreJobResponse struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Notes         string   `json:"notes"`
}

type GapTableRow struct {
	Skill  string `json:"skill"`
	Status string `json:"status"`
	Action string `json:"action"`
}

type GapSummaryResponse struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
	TotalMissing  int      `json:"total_missing"`
}

type SkillsGapTableResponse struct {
	GapTable []GapTableRow     `json:"gap_table"`
	Summary  GapSummaryResponse `json:"summary"`
}

type ExtractJobSkillsResponse struct {
	ExtractedSkills []string `json:"extracted_skills"`
	Note            string   `json:"note"`
}

type CheckSkillsGapResponse struct {
	JobSkillsFound []string `json:"job_skills_found"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	GapNote        string   `json:"gap_note"`
}

type RecommendationResponse struct {
	Skill  string         `json:"skill"`
	Course catalog.Course `json:"course"`
}

type RecommendLearningResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Note            string                   `json:"note"`
}
