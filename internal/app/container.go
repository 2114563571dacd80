package app

import (
	"fmt"
	"log"
	"os"

	"alignr/internal/catalog"
	"alignr/internal/config"
	"alignr/internal/infrastructure/cache"
)

// Container owns the long-lived dependencies shared by every request.
type Container struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Cache   *cache.Redis
	Logger  *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if cfg.Catalog.Path != "" {
		logger.Printf("catalog loaded | path=%s keywords=%d courses=%d", cfg.Catalog.Path, len(cat.SkillKeywords), len(cat.Courses))
	}

	return &Container{
		Config:  cfg,
		Catalog: cat,
		Cache:   cache.NewRedis(cfg.Cache, logger),
		Logger:  logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
