package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the extended professional record owned by exactly one user.
// UserName and UserAvatar are read-only joins from the owning user row.
type Profile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Company        string
	Location       string
	Website        string
	Bio            string
	Status         string
	GithubUsername string
	Skills         []string
	Social         Social
	Experience     []Experience
	Education      []Education

	UserName   string
	UserAvatar string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Social holds the profile's external links keyed by platform.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type Education struct {
	ID           uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}
