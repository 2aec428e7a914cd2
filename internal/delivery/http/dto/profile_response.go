package dto

import (
	"time"

	"github.com/google/uuid"

	"devconnect/internal/domain/profile"
)

type ProfileResponse struct {
	ID             uuid.UUID            `json:"id"`
	User           ProfileUserResponse  `json:"user"`
	Company        string               `json:"company"`
	Location       string               `json:"location"`
	Website        string               `json:"website"`
	Bio            string               `json:"bio"`
	Status         string               `json:"status"`
	GithubUsername string               `json:"githubusername"`
	Skills         []string             `json:"skills"`
	Social         SocialResponse       `json:"social"`
	Experience     []ExperienceResponse `json:"experience"`
	Education      []EducationResponse  `json:"education"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type ProfileUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

type SocialResponse struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ExperienceResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationResponse struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	exp := make([]ExperienceResponse, 0, len(p.Experience))
	for _, e := range p.Experience {
		exp = append(exp, ExperienceResponse{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		})
	}

	edu := make([]EducationResponse, 0, len(p.Education))
	for _, e := range p.Education {
		edu = append(edu, EducationResponse{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		})
	}

	return ProfileResponse{
		ID: p.ID,
		User: ProfileUserResponse{
			ID:     p.UserID,
			Name:   p.UserName,
			Avatar: p.UserAvatar,
		},
		Company:        p.Company,
		Location:       p.Location,
		Website:        p.Website,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Social: SocialResponse{
			Youtube:   p.Social.Youtube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			Linkedin:  p.Social.Linkedin,
			Instagram: p.Social.Instagram,
		},
		Experience: exp,
		Education:  edu,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func NewProfileListResponse(profiles []profile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
