package handler

import (
	"errors"

	"devconnect/internal/delivery/http/dto"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/pkg/response"
	"devconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GithubHandler struct {
	uc usecase.GithubUsecase
}

func NewGithubHandler(uc usecase.GithubUsecase) *GithubHandler {
	return &GithubHandler{uc: uc}
}

func (h *GithubHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/github/:username", h.ListRepos)
}

func (h *GithubHandler) ListRepos(c fiber.Ctx) error {
	repos, err := h.uc.ListRepos(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoGithubProfile) {
			return middleware.NewAppError(fiber.StatusNotFound, "No Github profile found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGithubRepoListResponse(repos))
}
