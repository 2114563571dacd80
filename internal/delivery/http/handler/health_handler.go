package handler

import (
	"context"

	"alignr/internal/delivery/http/dto"
	"alignr/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type CacheStatus interface {
	Status(ctx context.Context) string
}

type HealthHandler struct {
	appName string
	env     string
	cache   CacheStatus
}

func NewHealthHandler(appName, env string, cache CacheStatus) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.SendString("Alignr API is running.")
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cache := "disabled"
	if h.cache != nil {
		cache = h.cache.Status(c.Context())
	}
	return response.Envelope(c, fiber.StatusOK, response.MessageOK, dto.HealthResponse{
		App:         h.appName,
		Environment: h.env,
		Cache:       cache,
	})
}
