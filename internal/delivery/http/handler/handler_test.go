package handler

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alignr/internal/delivery/http/middleware"
	"alignr/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCacheStatus string

func (s stubCacheStatus) Status(context.Context) string { return string(s) }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	NewHealthHandler("alignr", "test", stubCacheStatus("disabled")).RegisterRoutes(app)
	NewSkillGapHandler(usecase.NewSkillGapUsecase(nil, nil, logger)).RegisterRoutes(app)
	NewGuidanceHandler(usecase.NewGuidanceUsecase()).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, _ := it.(string)
		out = append(out, s)
	}
	return out
}

func TestRoot(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alignr API is running.", string(body))
}

func TestHealth(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(200), body["status"])
	assert.Equal(t, "ok", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "alignr", data["app"])
	assert.Equal(t, "disabled", data["cache"])
}

func TestScoreJob(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/score-job",
		`{"user_skills":["SQL","Excel"],"job_description":"Looking for SQL, Excel and Tableau experience."}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(67), body["score"])
	assert.ElementsMatch(t, []string{"sql", "excel"}, stringSlice(body["matched_skills"]))
	assert.Equal(t, []string{"tableau"}, stringSlice(body["missing_skills"]))
	assert.Contains(t, body["notes"], "one key tool")
}

func TestScoreJob_NoKnownSkills(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/score-job",
		`{"user_skills":["SQL"],"job_description":"Barista wanted."}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["score"])
	assert.Empty(t, body["matched_skills"])
	assert.Empty(t, body["missing_skills"])
}

func TestSkillsGap(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/skills-gap", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Junior Data Analyst", body["job_title"])
	items := body["skills_to_develop"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "SQL", items[0].(map[string]any)["skill"])
}

func TestSkillsGapTable(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/skills-gap-table",
		`{"user_skills":["python","SQL"],"job_skills":["SQL","Tableau"]}`)

	assert.Equal(t, http.StatusOK, status)
	rows := body["gap_table"].([]any)
	require.Len(t, rows, 2)

	first := rows[0].(map[string]any)
	assert.Equal(t, "SQL", first["skill"])
	assert.Equal(t, "Matched ✅", first["status"])

	second := rows[1].(map[string]any)
	assert.Equal(t, "Tableau", second["skill"])
	assert.Equal(t, "Missing ❌", second["status"])
	assert.Contains(t, second["action"], "Tableau")

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total_required"])
	assert.Equal(t, float64(1), summary["total_matched"])
	assert.Equal(t, float64(1), summary["total_missing"])
}

func TestExtractJobSkills(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/extract-job-skills",
		`{"job_description":"Strong Python and project management skills; Figma is a plus."}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"python", "project management", "figma"}, stringSlice(body["extracted_skills"]))
	assert.NotEmpty(t, body["note"])
}

func TestCheckSkillsGap(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/check-skills-gap",
		`{"job_description":"SQL and Excel","user_skills":["excel"]}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"sql", "excel"}, stringSlice(body["job_skills_found"]))
	assert.Equal(t, []string{"excel"}, stringSlice(body["matched_skills"]))
	assert.Equal(t, []string{"sql"}, stringSlice(body["missing_skills"]))
	assert.Equal(t, gapNote, body["gap_note"])
}

func TestRecommendLearning(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/recommend-learning",
		`{"missing_skills":["SQL","Rust","sql"]}`)

	assert.Equal(t, http.StatusOK, status)
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 1)

	rec := recs[0].(map[string]any)
	assert.Equal(t, "SQL", rec["skill"])
	course := rec["course"].(map[string]any)
	assert.Equal(t, "SQL for Data Analysis", course["name"])
	assert.Equal(t, float64(3), course["hours_per_week"])
}

func TestCVFeedback(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/cv-feedback",
		`{"cv_text":"Worked at a shop."}`)

	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["feedback_points"])
	assert.NotEmpty(t, body["prompt_questions"])
}

func TestGuidanceIntake(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		goal string
		want string
	}{
		{goal: "Help me fix my CV", want: "cv_support"},
		{goal: "I'm not sure what to do", want: "career_exploration"},
		{goal: "I'm applying to jobs", want: "job_search"},
		{goal: "hello", want: "unsure"},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"goal": tt.goal})
			status, out := doRequest(t, app, http.MethodPost, "/guidance-intake", string(body))
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, out["type"])
			assert.NotEmpty(t, out["next_step"])
		})
	}
}

func TestCareerQuiz(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/career-quiz",
		`{"answers":["logical","quiet"]}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["career_suggestion"], "Data analysis")
}

func TestCareerDiscovery(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/career-discovery",
		`{"personality":["creative"],"interests":["design"],"skills":["figma"]}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"UX Designer", "Graphic Designer"}, stringSlice(body["suggested_careers"]))
	swot := body["swot_summary"].(map[string]any)
	assert.NotEmpty(t, swot["strengths"])
}

func TestCareerPlan(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/career-plan",
		`{"goal_role":"Data Analyst","current_skills":["Excel"],"required_skills":["Excel","SQL","Tableau"],"experience_years":0}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Entry-Level Role", body["path_level"])
	assert.ElementsMatch(t, []string{"SQL", "Tableau"}, stringSlice(body["missing_skills"]))
	assert.Equal(t, float64(8), body["estimated_weeks"])
	assert.Len(t, body["step_by_step_plan"], 2)
}

func TestCareerPlan_SeniorWithoutExperience(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/career-plan",
		`{"goal_role":"Senior Data Analyst","current_skills":[],"required_skills":["SQL"],"experience_years":2}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, float64(400), body["status"])
	assert.Contains(t, body["message"], "5+ years")

	data := body["data"].(map[string]any)
	assert.Equal(t, "Senior Data Analyst", data["goal_role"])
	assert.Equal(t, float64(5), data["required_years"])
	assert.Equal(t, float64(2), data["experience_years"])
}

func TestCareerPlan_MidLevelWithoutExperience(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/career-plan",
		`{"goal_role":"Associate Analyst","experience_years":1}`)

	assert.Equal(t, http.StatusBadRequest, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["required_years"])
}

func TestJobLevelValidation(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/job-level-validation",
		`{"skills":["SQL","Excel"],"experience_years":0.5}`)

	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["suggested_level"])
	assert.NotEmpty(t, body["reason"])
}

func TestJobTracker(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/job-tracker",
		`{"applications":[{"job_title":"Analyst","company":"Acme","deadline":"2025-01-31","tailored_cv":false,"notes":"referral"}]}`)

	assert.Equal(t, http.StatusOK, status)
	apps := body["applications"].([]any)
	require.Len(t, apps, 1)

	item := apps[0].(map[string]any)
	assert.Equal(t, "referral", item["notes"])
	assert.Equal(t, "Tailor CV and cover letter", item["next_step"])
	assert.Equal(t, "Yes", item["is_urgent"])
	assert.Equal(t, "Focus on CV tailoring", item["suggested_action"])
}

func TestMalformedJSONTreatedAsEmpty(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/score-job", `{"user_skills": [`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["score"])

	status, body = doRequest(t, app, http.MethodPost, "/job-tracker", `not json`)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["applications"])
}

func TestWrongTypedFieldOnlyResetsThatField(t *testing.T) {
	app := newTestApp(t)

	t.Run("string instead of list", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/check-skills-gap",
			`{"job_description":"Python and SQL","user_skills":"python"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{"python", "sql"}, stringSlice(body["job_skills_found"]))
		assert.Empty(t, body["matched_skills"])
		assert.Equal(t, []string{"python", "sql"}, stringSlice(body["missing_skills"]))
	})

	t.Run("string instead of number keeps goal role", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/career-plan",
			`{"goal_role":"Senior Analyst","required_skills":["sql"],"experience_years":"1"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Senior Analyst", data["goal_role"])
		assert.Equal(t, float64(0), data["experience_years"])
	})

	t.Run("non-string list elements are dropped", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/skills-gap-table",
			`{"user_skills":["sql",1,null],"job_skills":["sql","tableau",{"x":1}]}`)

		assert.Equal(t, http.StatusOK, status)
		summary := body["summary"].(map[string]any)
		assert.Equal(t, float64(2), summary["total_required"])
		assert.Equal(t, float64(1), summary["total_matched"])
		assert.Equal(t, []string{"tableau"}, stringSlice(summary["missing_skills"]))
	})

	t.Run("non-object applications are dropped", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/job-tracker",
			`{"applications":["oops",{"job_title":"Analyst","tailored_cv":true,"status":"in progress"},42]}`)

		assert.Equal(t, http.StatusOK, status)
		apps := body["applications"].([]any)
		require.Len(t, apps, 1)
		assert.Equal(t, "Check deadline and submit", apps[0].(map[string]any)["suggested_action"])
	})

	t.Run("non-object body", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/guidance-intake", `["cv"]`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "unsure", body["type"])
	})
}

func TestJobTracker_ExplicitEmptyStatusIsNotDefaulted(t *testing.T) {
	app := newTestApp(t)

	for _, status := range []string{`""`, `null`} {
		t.Run(status, func(t *testing.T) {
			code, body := doRequest(t, app, http.MethodPost, "/job-tracker",
				`{"applications":[{"deadline":"2026-11-01","tailored_cv":true,"status":`+status+`}]}`)

			assert.Equal(t, http.StatusOK, code)
			item := body["applications"].([]any)[0].(map[string]any)
			assert.Equal(t, "No", item["is_urgent"])
		})
	}
}

func TestWrongMethod(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodGet, "/score-job", "")

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, float64(405), body["status"])
}

func TestMissingBodyTreatedAsEmpty(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/guidance-intake", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "unsure", body["type"])
}

func TestUnknownRoute(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(404), body["status"])
}
