package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"devconnect/internal/domain/profile"
	"devconnect/internal/domain/user"
	"devconnect/internal/infrastructure/cache"
)

const (
	profileListCacheKey = "profiles:all"
	profileListCacheTTL = 30 * time.Second
)

// UpsertProfileInput mirrors the create-or-update request body. Pointer
// fields that stay nil were not supplied and keep their stored values;
// Skills is the raw comma-delimited string.
type UpsertProfileInput struct {
	Status string
	Skills string

	Company        *string
	Location       *string
	Website        *string
	Bio            *string
	GithubUsername *string

	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	GetByUserID(ctx context.Context, rawUserID string) (profile.Profile, error)
	List(ctx context.Context) ([]profile.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (profile.Profile, error)
	// DeleteAccount removes the user; the profile goes with it.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	AddExperience(ctx context.Context, userID uuid.UUID, in profile.ExperienceInput) (profile.Profile, error)
	RemoveExperience(ctx context.Context, userID uuid.UUID, rawExperienceID string) (profile.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, in profile.EducationInput) (profile.Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, rawEducationID string) (profile.Profile, error)
}

type Profiles struct {
	profiles profile.Repository
	users    user.Repository
	cache    *cache.Redis
	logger   *log.Logger
}

func NewProfileUsecase(profiles profile.Repository, users user.Repository, c *cache.Redis, logger *log.Logger) *Profiles {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiles{profiles: profiles, users: users, cache: c, logger: logger}
}

func (p *Profiles) GetOwn(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	return p.profiles.GetByUserID(ctx, userID)
}

// GetByUserID treats a syntactically invalid id the same as an unknown
// one: there is no profile behind it.
func (p *Profiles) GetByUserID(ctx context.Context, rawUserID string) (profile.Profile, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawUserID))
	if err != nil {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p.profiles.GetByUserID(ctx, id)
}

func (p *Profiles) List(ctx context.Context) ([]profile.Profile, error) {
	var cached []profile.Profile
	if ok, err := p.cache.GetJSON(ctx, profileListCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	out, err := p.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = p.cache.SetJSON(ctx, profileListCacheKey, out, profileListCacheTTL)
	return out, nil
}

func (p *Profiles) Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (profile.Profile, error) {
	upsert := profile.UpsertInput{
		Status:         strings.TrimSpace(in.Status),
		Skills:         ParseSkills(in.Skills),
		Company:        in.Company,
		Location:       in.Location,
		Website:        in.Website,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
	}

	// Any supplied link replaces the social sub-record as a whole.
	if in.Youtube != nil || in.Twitter != nil || in.Facebook != nil || in.Linkedin != nil || in.Instagram != nil {
		upsert.Social = &profile.Social{
			Youtube:   deref(in.Youtube),
			Twitter:   deref(in.Twitter),
			Facebook:  deref(in.Facebook),
			Linkedin:  deref(in.Linkedin),
			Instagram: deref(in.Instagram),
		}
	}

	out, err := p.profiles.Upsert(ctx, userID, upsert)
	if err != nil {
		return profile.Profile{}, err
	}
	p.invalidateList(ctx)
	return out, nil
}

func (p *Profiles) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := p.users.Delete(ctx, userID); err != nil {
		return err
	}
	// TODO: cascade the user's posts once a posts module exists.
	p.invalidateList(ctx)
	return nil
}

func (p *Profiles) AddExperience(ctx context.Context, userID uuid.UUID, in profile.ExperienceInput) (profile.Profile, error) {
	prof, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := p.profiles.AddExperience(ctx, prof.ID, in); err != nil {
		return profile.Profile{}, err
	}
	p.invalidateList(ctx)
	return p.profiles.GetByUserID(ctx, userID)
}

// RemoveExperience deletes the entry whose id matches rawExperienceID. An
// unknown or malformed id leaves the sequence exactly as it was.
func (p *Profiles) RemoveExperience(ctx context.Context, userID uuid.UUID, rawExperienceID string) (profile.Profile, error) {
	prof, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	if expID, err := uuid.Parse(strings.TrimSpace(rawExperienceID)); err == nil {
		if err := p.profiles.RemoveExperience(ctx, prof.ID, expID); err != nil {
			return profile.Profile{}, err
		}
		p.invalidateList(ctx)
	}

	return p.profiles.GetByUserID(ctx, userID)
}

func (p *Profiles) AddEducation(ctx context.Context, userID uuid.UUID, in profile.EducationInput) (profile.Profile, error) {
	prof, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := p.profiles.AddEducation(ctx, prof.ID, in); err != nil {
		return profile.Profile{}, err
	}
	p.invalidateList(ctx)
	return p.profiles.GetByUserID(ctx, userID)
}

func (p *Profiles) RemoveEducation(ctx context.Context, userID uuid.UUID, rawEducationID string) (profile.Profile, error) {
	prof, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	if eduID, err := uuid.Parse(strings.TrimSpace(rawEducationID)); err == nil {
		if err := p.profiles.RemoveEducation(ctx, prof.ID, eduID); err != nil {
			return profile.Profile{}, err
		}
		p.invalidateList(ctx)
	}

	return p.profiles.GetByUserID(ctx, userID)
}

func (p *Profiles) invalidateList(ctx context.Context) {
	_ = p.cache.Delete(ctx, profileListCacheKey)
}

// ParseSkills splits a comma-delimited skills string into trimmed,
// non-empty entries with their order preserved.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ ProfileUsecase = (*Profiles)(nil)
