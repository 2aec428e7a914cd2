package routes

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/delivery/http/handler"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/infrastructure/cache"
	"devconnect/internal/infrastructure/github"
	"devconnect/internal/pkg/jwt"
	"devconnect/internal/repository"
	"devconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Registry builds the dependency graph (repositories, usecases, handlers)
// and mounts every route group.
type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	profile *handler.ProfileHandler
	github  *handler.GithubHandler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, logger *log.Logger) *Registry {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)

	githubClient := github.NewClient(cfg.Github.BaseURL, cfg.Github.Token, logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, c, logger)
	githubUC := usecase.NewGithubUsecase(githubClient, c, logger)

	return &Registry{
		health:  handler.NewHealthHandler(),
		auth:    handler.NewAuthHandler(authUC),
		profile: handler.NewProfileHandler(profileUC),
		github:  handler.NewGithubHandler(githubUC),
		authMw:  middleware.NewAuthMiddleware(jwtSvc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	mw := r.authMw.Middleware()

	r.auth.RegisterUserRoutes(api.Group("/users"))
	r.auth.RegisterAuthRoutes(api.Group("/auth"), mw)

	prof := api.Group("/profile")
	r.github.RegisterRoutes(prof)
	r.profile.RegisterRoutes(prof, mw)
}
