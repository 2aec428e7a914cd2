package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/database/migration"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, applies pending migrations, and returns
// the assembled app with its cleanup func.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
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
