package handler

import (
	"errors"
	"time"

	"devconnect/internal/delivery/http/dto"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/domain/profile"
	"devconnect/internal/pkg/response"
	"devconnect/internal/pkg/validate"
	"devconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgNoProfile = "There is no profile for this user"

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type upsertProfileRequest struct {
	Status string `json:"status" validate:"required"`
	Skills string `json:"skills" validate:"required"`

	Company        *string `json:"company"`
	Location       *string `json:"location"`
	Website        *string `json:"website"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`

	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

type addExperienceRequest struct {
	Title       string     `json:"title"   validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"    validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type addEducationRequest struct {
	School       string     `json:"school"       validate:"required"`
	Degree       string     `json:"degree"       validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from"         validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/me", authMw, h.Me)
	r.Post("/", authMw, h.Upsert)
	r.Delete("/", authMw, h.DeleteAccount)
	r.Get("/user/:user_id", h.GetByUserID)

	r.Put("/experience", authMw, h.AddExperience)
	r.Delete("/experience/:exp_id", authMw, h.RemoveExperience)
	r.Put("/education", authMw, h.AddEducation)
	r.Delete("/education/:edu_id", authMw, h.RemoveEducation)
}

func (h *ProfileHandler) Me(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	prof, err := h.uc.GetOwn(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req upsertProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if errs := validate.Struct(req); errs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	prof, err := h.uc.Upsert(c.Context(), userID, usecase.UpsertProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Location:       req.Location,
		Website:        req.Website,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	profiles, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileListResponse(profiles))
}

func (h *ProfileHandler) GetByUserID(c fiber.Ctx) error {
	prof, err := h.uc.GetByUserID(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) DeleteAccount(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	if err := h.uc.DeleteAccount(c.Context(), userID); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "User deleted", nil)
}

func (h *ProfileHandler) AddExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req addExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if errs := validate.Struct(req); errs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	prof, err := h.uc.AddExperience(c.Context(), userID, profile.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) RemoveExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	prof, err := h.uc.RemoveExperience(c.Context(), userID, c.Params("exp_id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) AddEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req addEducationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if errs := validate.Struct(req); errs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", errs, nil)
	}

	prof, err := h.uc.AddEducation(c.Context(), userID, profile.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) RemoveEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	prof, err := h.uc.RemoveEducation(c.Context(), userID, c.Params("edu_id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

// Profile lookups that miss answer 400, and a malformed id gets the same
// response as an unknown one.
func mapProfileError(err error) error {
	if errors.Is(err, profile.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoProfile, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
