package handler

import (
	"errors"

	"alignr/internal/delivery/http/dto"
	"alignr/internal/delivery/http/middleware"
	"alignr/internal/domain/guidance"
	"alignr/internal/pkg/response"
	"alignr/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GuidanceHandler struct {
	uc usecase.GuidanceUsecase
}

func NewGuidanceHandler(uc usecase.GuidanceUsecase) *GuidanceHandler {
	return &GuidanceHandler{uc: uc}
}

func (h *GuidanceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/cv-feedback", h.CVFeedback)
	r.Post("/guidance-intake", h.GuidanceIntake)
	r.Post("/career-quiz", h.CareerQuiz)
	r.Post("/career-discovery", h.CareerDiscovery)
	r.Post("/career-plan", h.CareerPlan)
	r.Post("/job-level-validation", h.JobLevelValidation)
	r.Post("/job-tracker", h.JobTracker)
}

func (h *GuidanceHandler) CVFeedback(c fiber.Ctx) error {
	req := dto.CVFeedbackRequest{CVText: readFields(c).String("cv_text")}

	res := h.uc.ReviewCV(c.Context(), req.CVText)
	return response.JSON(c, fiber.StatusOK, dto.CVFeedbackResponse{
		FeedbackPoints:  res.FeedbackPoints,
		PromptQuestions: res.PromptQuestions,
	})
}

func (h *GuidanceHandler) GuidanceIntake(c fiber.Ctx) error {
	req := dto.GuidanceIntakeRequest{Goal: readFields(c).String("goal")}

	res := h.uc.Intake(c.Context(), req.Goal)
	return response.JSON(c, fiber.StatusOK, dto.GuidanceIntakeResponse{Type: res.Type, NextStep: res.NextStep})
}

func (h *GuidanceHandler) CareerQuiz(c fiber.Ctx) error {
	req := dto.CareerQuizRequest{Answers: readFields(c).Strings("answers")}

	res := h.uc.CareerQuiz(c.Context(), req.Answers)
	return response.JSON(c, fiber.StatusOK, dto.CareerQuizResponse{
		PersonalitySummary: res.PersonalitySummary,
		CareerSuggestion:   res.CareerSuggestion,
		NextStep:           res.NextStep,
	})
}

func (h *GuidanceHandler) CareerDiscovery(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.CareerDiscoveryRequest{
		Personality: f.Strings("personality"),
		Interests:   f.Strings("interests"),
		Skills:      f.Strings("skills"),
	}

	res := h.uc.CareerDiscovery(c.Context(), req.Personality, req.Interests, req.Skills)
	return response.JSON(c, fiber.StatusOK, dto.CareerDiscoveryResponse{
		PersonalityTraits: res.PersonalityTraits,
		Interests:         res.Interests,
		Skills:            res.Skills,
		SuggestedCareers:  res.SuggestedCareers,
		SWOTSummary: dto.SWOTResponse{
			Strengths:     res.SWOT.Strengths,
			Weaknesses:    res.SWOT.Weaknesses,
			Opportunities: res.SWOT.Opportunities,
			Threats:       res.SWOT.Threats,
		},
	})
}

func (h *GuidanceHandler) CareerPlan(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.CareerPlanRequest{
		GoalRole:        f.String("goal_role"),
		CurrentSkills:   f.Strings("current_skills"),
		RequiredSkills:  f.Strings("required_skills"),
		ExperienceYears: f.Float("experience_years"),
	}

	plan, err := h.uc.CareerPlan(c.Context(), guidance.PlanInput{
		GoalRole:        req.GoalRole,
		CurrentSkills:   req.CurrentSkills,
		RequiredSkills:  req.RequiredSkills,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return mapGuidanceUsecaseError(req, err)
	}

	steps := make([]dto.PlanStepResponse, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		steps = append(steps, dto.PlanStepResponse{
			Skill:           s.Skill,
			SuggestedCourse: s.SuggestedCourse,
			Duration:        s.Duration,
			HoursPerWeek:    s.HoursPerWeek,
		})
	}

	return response.JSON(c, fiber.StatusOK, dto.CareerPlanResponse{
		GoalRole:          plan.GoalRole,
		PathLevel:         plan.PathLevel,
		MissingSkills:     plan.MissingSkills,
		EstimatedWeeks:    plan.EstimatedWeeks,
		RealisticTimeline: plan.RealisticTimeline,
		StepByStepPlan:    steps,
		FinalStep:         plan.FinalStep,
	})
}

func (h *GuidanceHandler) JobLevelValidation(c fiber.Ctx) error {
	f := readFields(c)
	req := dto.JobLevelValidationRequest{
		Skills:          f.Strings("skills"),
		ExperienceYears: f.Float("experience_years"),
	}

	res := h.uc.ValidateJobLevel(c.Context(), req.Skills, req.ExperienceYears)
	return response.JSON(c, fiber.StatusOK, dto.JobLevelValidationResponse{
		SuggestedLevel: res.SuggestedLevel,
		Reason:         res.Reason,
		Suggestions:    res.Suggestions,
	})
}

func (h *GuidanceHandler) JobTracker(c fiber.Ctx) error {
	req := dto.JobTrackerRequest{Applications: readFields(c).Objects("applications")}

	return response.JSON(c, fiber.StatusOK, dto.JobTrackerResponse{
		Applications: h.uc.TrackApplications(c.Context(), req.Applications),
	})
}

func mapGuidanceUsecaseError(req dto.CareerPlanRequest, err error) error {
	if err == nil {
		return nil
	}

	var expErr *guidance.ExperienceError
	if errors.As(err, &expErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, expErr.Message, dto.CareerPlanRejection{
			GoalRole:        req.GoalRole,
			RequiredYears:   expErr.RequiredYears,
			ExperienceYears: req.ExperienceYears,
		}, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
}
