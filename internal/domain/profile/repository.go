package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// UpsertInput carries the fields of a create-or-update request. Nil pointer
// fields were not supplied and must be left untouched on an existing
// profile; Status and Skills are always present (validated upstream).
type UpsertInput struct {
	Status string
	Skills []string

	Company        *string
	Location       *string
	Website        *string
	Bio            *string
	GithubUsername *string
	Social         *Social
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	List(ctx context.Context) ([]Profile, error)

	// Upsert creates the profile for userID or partially updates the
	// existing one in a single atomic statement.
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertInput) (Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// Add* insert at the front of the sequence (most-recent-first).
	// Remove* delete by sub-entity id; an unknown id is a no-op.
	AddExperience(ctx context.Context, profileID uuid.UUID, in ExperienceInput) error
	RemoveExperience(ctx context.Context, profileID, experienceID uuid.UUID) error
	AddEducation(ctx context.Context, profileID uuid.UUID, in EducationInput) error
	RemoveEducation(ctx context.Context, profileID, educationID uuid.UUID) error
}
