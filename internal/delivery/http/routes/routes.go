package routes

import (
	"alignr/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	skillGap *handler.SkillGapHandler
	guidance *handler.GuidanceHandler
}

func NewRegistry(health *handler.HealthHandler, skillGap *handler.SkillGapHandler, guidance *handler.GuidanceHandler) *Registry {
	return &Registry{health: health, skillGap: skillGap, guidance: guidance}
}

// Register mounts every endpoint at the root and mirrors the POST endpoints
// under /api/v1.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerRoot(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerRoot(app *fiber.App) {
	RegisterV1(app, r.skillGap, r.guidance)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.skillGap, r.guidance)
}
