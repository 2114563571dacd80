package handler

import (
	"alignr/internal/delivery/http/dto"
	"alignr/internal/pkg/response"
	"alignr/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	extractNote   = "Skills are matched against a fixed keyword list. Phrase variations or synonyms will not be picked up."
	gapNote       = "These are the skills mentioned in the job vs what you currently show."
	recommendNote = "These resources directly match the skills you need to develop."
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/score-job", h.ScoreJob)
	r.Post("/skills-gap", h.SkillsGap)
	r.Post("/skills-gap-table", h.SkillsGapTable)
	r.Post("/extract-job-skills", h.ExtractJobSkills)
	r.Post("/check-skills-gap", h.CheckSkillsGap)
	r.Post("/recommend-learning", h.RecommendLearning)
}

func (h *SkillGapHandler) ScoreJob(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.ScoreJobRequest{
		UserSkills:     f.Strings("user_skills"),
		JobDescription: f.String("job_description"),
	}

	res := h.uc.ScoreJob(c.Context(), req.UserSkills, req.JobDescription)
	return response.JSON(c, fiber.StatusOK, dto.ScoreJobResponse{
		Score:         res.Score,
		MatchedSkills: res.MatchedSkills,
		MissingSkills: res.MissingSkills,
		Notes:         res.Notes,
	})
}

func (h *SkillGapHandler) SkillsGap(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, h.uc.SkillsGapReport(c.Context()))
}

func (h *SkillGapHandler) SkillsGapTable(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.SkillsGapTableRequest{
		UserSkills: f.Strings("user_skills"),
		JobSkills:  f.Strings("job_skills"),
	}

	res := h.uc.GapTable(c.Context(), req.UserSkills, req.JobSkills)

	rows := make([]dto.GapTableRow, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, dto.GapTableRow{Skill: r.Skill, Status: r.Status, Action: r.Action})
	}

	return response.JSON(c, fiber.StatusOK, dto.SkillsGapTableResponse{
		GapTable: rows,
		Summary: dto.GapSummaryResponse{
			MatchedSkills: res.MatchedSkills,
			MissingSkills: res.MissingSkills,
			TotalRequired: res.Summary.TotalRequired,
			TotalMatched:  res.Summary.TotalMatched,
			TotalMissing:  res.Summary.TotalMissing,
		},
	})
}

func (h *SkillGapHandler) ExtractJobSkills(c fiber.Ctx) error {
	req := dto.ExtractJobSkillsRequest{JobDescription: readFields(c).String("job_description")}

	return response.JSON(c, fiber.StatusOK, dto.ExtractJobSkillsResponse{
		ExtractedSkills: h.uc.ExtractJobSkills(c.Context(), req.JobDescription),
		Note:            extractNote,
	})
}

func (h *SkillGapHandler) CheckSkillsGap(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.CheckSkillsGapRequest{
		JobDescription: f.String("job_description"),
		UserSkills:     f.Strings("user_skills"),
	}

	res := h.uc.CheckSkillsGap(c.Context(), req.JobDescription, req.UserSkills)
	return response.JSON(c, fiber.StatusOK, dto.CheckSkillsGapResponse{
		JobSkillsFound: res.JobSkillsFound,
		MatchedSkills:  res.MatchedSkills,
		MissingSkills:  res.MissingSkills,
		GapNote:        gapNote,
	})
}

func (h *SkillGapHandler) RecommendLearning(c fiber.Ctx) error {
	req := dto.RecommendLearningRequest{MissingSkills: readFields(c).Strings("missing_skills")}

	recs := h.uc.RecommendLearning(c.Context(), req.MissingSkills)
	out := make([]dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationResponse{Skill: r.Skill, Course: r.Course})
	}

	return response.JSON(c, fiber.StatusOK, dto.RecommendLearningResponse{
		Recommendations: out,
		Note:            recommendNote,
	})
}
