package v1

import (
	"alignr/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, skillGap *handler.SkillGapHandler, guidance *handler.GuidanceHandler) {
	if r == nil {
		return
	}

	if skillGap != nil {
		skillGap.RegisterRoutes(r)
	}
	if guidance != nil {
		guidance.RegisterRoutes(r)
	}
}
