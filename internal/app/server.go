package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alignr/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Run bootstraps the HTTP server and blocks until it fails or the process
// receives SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	bootstrap, cleanup, err := Bootstrap(cfg)
	if err != nil {
		return err
	}
	logger := bootstrap.Container.Logger
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("server starting | app=%s env=%s addr=%s", cfg.App.AppName, cfg.App.Environment, addr)
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Printf("shutdown requested | signal=%s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
	return nil
}
