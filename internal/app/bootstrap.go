package app

import (
	"fmt"
	"strings"

	"alignr/internal/config"
	"alignr/internal/delivery/http/handler"
	"alignr/internal/delivery/http/middleware"
	"alignr/internal/delivery/http/routes"
	"alignr/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(container *Container) *App {
	cfg := container.Config
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	return &App{Fiber: f, Container: container}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(container.Logger)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(container.Logger)
	app.Use(errMw.Middleware())

	app.Use(cors.New(cors.Config{AllowOrigins: container.Config.CORS.AllowOrigins}))
}

func registerRoutes(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	cfg := container.Config

	skillGapUC := usecase.NewSkillGapUsecase(container.Catalog, container.Cache, container.Logger)
	guidanceUC := usecase.NewGuidanceUsecase()

	registry := routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.AppName, cfg.App.Environment, container.Cache),
		handler.NewSkillGapHandler(skillGapUC),
		handler.NewGuidanceHandler(guidanceUC),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
