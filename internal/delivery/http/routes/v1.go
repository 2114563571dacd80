package routes

import (
	"alignr/internal/delivery/http/handler"
	v1 "alignr/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, skillGap *handler.SkillGapHandler, guidance *handler.GuidanceHandler) {
	if r == nil {
		return
	}

	v1.Register(r, skillGap, guidance)
}
