package usecase

import (
	"context"
	"fmt"
	"strings"

	"alignr/internal/domain/guidance"
)

type GuidanceUsecase interface {
	ReviewCV(ctx context.Context, cvText string) guidance.CVFeedback
	Intake(ctx context.Context, goal string) guidance.Intake
	CareerQuiz(ctx context.Context, answers []string) guidance.QuizResult
	CareerDiscovery(ctx context.Context, personality, interests, skills []string) guidance.Discovery
	CareerPlan(ctx context.Context, in guidance.PlanInput) (guidance.CareerPlan, error)
	ValidateJobLevel(ctx context.Context, skills []string, experienceYears float64) guidance.LevelAssessment
	TrackApplications(ctx context.Context, applications []map[string]any) []map[string]any
}

type Guidance struct{}

func NewGuidanceUsecase() *Guidance {
	return &Guidance{}
}

func (u *Guidance) ReviewCV(_ context.Context, cvText string) guidance.CVFeedback {
	return guidance.ReviewCV(cvText)
}

func (u *Guidance) Intake(_ context.Context, goal string) guidance.Intake {
	return guidance.ClassifyGoal(goal)
}

func (u *Guidance) CareerQuiz(_ context.Context, answers []string) guidance.QuizResult {
	return guidance.ScoreQuiz(answers)
}

func (u *Guidance) CareerDiscovery(_ context.Context, personality, interests, skills []string) guidance.Discovery {
	return guidance.DiscoverCareers(personality, interests, skills)
}

func (u *Guidance) CareerPlan(_ context.Context, in guidance.PlanInput) (guidance.CareerPlan, error) {
	return guidance.PlanCareer(in)
}

func (u *Guidance) ValidateJobLevel(_ context.Context, skills []string, experienceYears float64) guidance.LevelAssessment {
	return guidance.AssessLevel(skills, experienceYears)
}

// TrackApplications annotates each application with advice fields. Fields the
// caller sent are echoed back untouched apart from the three derived keys.
func (u *Guidance) TrackApplications(_ context.Context, applications []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(applications))
	for _, raw := range applications {
		item := make(map[string]any, len(raw)+3)
		for k, v := range raw {
			item[k] = v
		}

		adv := guidance.AdviseApplication(applicationFromMap(raw))
		item["next_step"] = adv.NextStep
		item["is_urgent"] = adv.IsUrgent
		item["suggested_action"] = adv.SuggestedAction
		out = append(out, item)
	}
	return out
}

func applicationFromMap(m map[string]any) guidance.Application {
	return guidance.Application{
		JobTitle:   stringField(m, "job_title"),
		Company:    stringField(m, "company"),
		Deadline:   stringField(m, "deadline"),
		TailoredCV: truthy(m["tailored_cv"]),
		Status:     statusField(m),
	}
}

// statusField applies the "not started" default only when the key is absent;
// an explicit empty or null status is kept as empty.
func statusField(m map[string]any) string {
	if _, ok := m["status"]; !ok {
		return guidance.StatusNotStarted
	}
	return stringField(m, "status")
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
