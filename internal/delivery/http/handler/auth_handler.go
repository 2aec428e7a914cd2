package handler

import (
	"errors"

	"devconnect/internal/delivery/http/dto"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/response"
	"devconnect/internal/pkg/validate"
	"devconnect/internal/usecase"
	ucauth "devconnect/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterUserRoutes mounts registration under the users group.
func (h *AuthHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Register)
}

// RegisterAuthRoutes mounts login and the current-user lookup under the
// auth group.
func (h *AuthHandler) RegisterAuthRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/", h.Login)
	r.Get("/", authMw, h.Me)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if errs := validate.Struct(req); errs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if errs := validate.Struct(req); errs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	token, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TokenResponse{Token: token})
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	usr, err := h.uc.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusBadRequest, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "User already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
