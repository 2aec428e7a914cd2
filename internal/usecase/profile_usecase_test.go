package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/domain/profile"
)

// memProfileRepo keeps profiles in memory with the same write semantics as
// the Postgres repository: partial updates on upsert, front-insertion for
// sub-entities, tolerant deletes.
type memProfileRepo struct {
	byUserID map[uuid.UUID]*profile.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byUserID: make(map[uuid.UUID]*profile.Profile)}
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return *p, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]profile.Profile, error) {
	out := make([]profile.Profile, 0, len(r.byUserID))
	for _, p := range r.byUserID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, userID uuid.UUID, in profile.UpsertInput) (profile.Profile, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		p = &profile.Profile{ID: uuid.New(), UserID: userID}
		r.byUserID[userID] = p
	}
	p.Status = in.Status
	p.Skills = in.Skills
	if in.Company != nil {
		p.Company = *in.Company
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Website != nil {
		p.Website = *in.Website
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.GithubUsername != nil {
		p.GithubUsername = *in.GithubUsername
	}
	if in.Social != nil {
		p.Social = *in.Social
	}
	return *p, nil
}

func (r *memProfileRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(r.byUserID, userID)
	return nil
}

func (r *memProfileRepo) find(profileID uuid.UUID) *profile.Profile {
	for _, p := range r.byUserID {
		if p.ID == profileID {
			return p
		}
	}
	return nil
}

func (r *memProfileRepo) AddExperience(_ context.Context, profileID uuid.UUID, in profile.ExperienceInput) error {
	p := r.find(profileID)
	if p == nil {
		return profile.ErrNotFound
	}
	exp := profile.Experience{
		ID:          uuid.New(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]profile.Experience{exp}, p.Experience...)
	return nil
}

func (r *memProfileRepo) RemoveExperience(_ context.Context, profileID, experienceID uuid.UUID) error {
	p := r.find(profileID)
	if p == nil {
		return profile.ErrNotFound
	}
	for i, e := range p.Experience {
		if e.ID == experienceID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memProfileRepo) AddEducation(_ context.Context, profileID uuid.UUID, in profile.EducationInput) error {
	p := r.find(profileID)
	if p == nil {
		return profile.ErrNotFound
	}
	edu := profile.Education{
		ID:           uuid.New(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = append([]profile.Education{edu}, p.Education...)
	return nil
}

func (r *memProfileRepo) RemoveEducation(_ context.Context, profileID, educationID uuid.UUID) error {
	p := r.find(profileID)
	if p == nil {
		return profile.ErrNotFound
	}
	for i, e := range p.Education {
		if e.ID == educationID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ profile.Repository = (*memProfileRepo)(nil)

func strptr(s string) *string { return &s }

func newProfilesUnderTest() (*Profiles, *memProfileRepo, *fakeUserRepo) {
	profiles := newMemProfileRepo()
	users := newFakeUserRepo()
	return NewProfileUsecase(profiles, users, nil, nil), profiles, users
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"node", "react", "css"}, ParseSkills("node, react , css"))
	assert.Equal(t, []string{"go"}, ParseSkills(",go,,"))
	assert.Empty(t, ParseSkills("  ,  "))
	assert.Empty(t, ParseSkills(""))
}

func TestProfiles_UpsertCreatesThenPartiallyUpdates(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()
	userID := uuid.New()

	created, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{
		Status:  "Developer",
		Skills:  "go, postgres",
		Company: strptr("Acme"),
		Bio:     strptr("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, []string{"go", "postgres"}, created.Skills)
	assert.Equal(t, "Acme", created.Company)

	// A second upsert without Company must leave it untouched.
	updated, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{
		Status: "Senior Developer",
		Skills: "go",
		Bio:    strptr("updated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Developer", updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "updated", updated.Bio)
}

func TestProfiles_UpsertReplacesSocialAsAWhole(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{
		Status:  "Developer",
		Skills:  "go",
		Youtube: strptr("https://youtube.com/alice"),
		Twitter: strptr("https://twitter.com/alice"),
	})
	require.NoError(t, err)

	// Supplying only twitter rebuilds the whole social record; the old
	// youtube link does not survive.
	out, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{
		Status:  "Developer",
		Skills:  "go",
		Twitter: strptr("https://twitter.com/alice2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/alice2", out.Social.Twitter)
	assert.Empty(t, out.Social.Youtube)
}

func TestProfiles_GetByUserID_InvalidIDIsNotFound(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()

	_, err := uc.GetByUserID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, profile.ErrNotFound)

	_, err = uc.GetByUserID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestProfiles_ExperienceFrontInsertion(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	_, err = uc.AddExperience(context.Background(), userID, profile.ExperienceInput{
		Title: "Junior", Company: "Acme", From: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out, err := uc.AddExperience(context.Background(), userID, profile.ExperienceInput{
		Title: "Senior", Company: "Acme", From: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), Current: true,
	})
	require.NoError(t, err)

	require.Len(t, out.Experience, 2)
	assert.Equal(t, "Senior", out.Experience[0].Title)
	assert.Equal(t, "Junior", out.Experience[1].Title)
}

func TestProfiles_RemoveExperience(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	_, err = uc.AddExperience(context.Background(), userID, profile.ExperienceInput{Title: "Junior", Company: "Acme", From: time.Now()})
	require.NoError(t, err)
	out, err := uc.AddExperience(context.Background(), userID, profile.ExperienceInput{Title: "Senior", Company: "Acme", From: time.Now()})
	require.NoError(t, err)
	require.Len(t, out.Experience, 2)

	t.Run("removes the matching entry", func(t *testing.T) {
		after, err := uc.RemoveExperience(context.Background(), userID, out.Experience[0].ID.String())
		require.NoError(t, err)
		require.Len(t, after.Experience, 1)
		assert.Equal(t, "Junior", after.Experience[0].Title)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		after, err := uc.RemoveExperience(context.Background(), userID, uuid.NewString())
		require.NoError(t, err)
		assert.Len(t, after.Experience, 1)
	})

	t.Run("malformed id is a no-op", func(t *testing.T) {
		after, err := uc.RemoveExperience(context.Background(), userID, "garbage")
		require.NoError(t, err)
		assert.Len(t, after.Experience, 1)
	})

	t.Run("no profile", func(t *testing.T) {
		_, err := uc.RemoveExperience(context.Background(), uuid.New(), uuid.NewString())
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})
}

func TestProfiles_EducationFrontInsertionAndRemoval(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, UpsertProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	_, err = uc.AddEducation(context.Background(), userID, profile.EducationInput{
		School: "State U", Degree: "BSc", FieldOfStudy: "CS", From: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	out, err := uc.AddEducation(context.Background(), userID, profile.EducationInput{
		School: "Tech Institute", Degree: "MSc", FieldOfStudy: "CS", From: time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, out.Education, 2)
	assert.Equal(t, "Tech Institute", out.Education[0].School)

	after, err := uc.RemoveEducation(context.Background(), userID, out.Education[1].ID.String())
	require.NoError(t, err)
	require.Len(t, after.Education, 1)
	assert.Equal(t, "Tech Institute", after.Education[0].School)
}

func TestProfiles_DeleteAccount(t *testing.T) {
	uc, _, users := newProfilesUnderTest()
	userID := uuid.New()

	require.NoError(t, uc.DeleteAccount(context.Background(), userID))
	assert.Equal(t, []uuid.UUID{userID}, users.deleted)
}

func TestProfiles_List(t *testing.T) {
	uc, _, _ := newProfilesUnderTest()

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = uc.Upsert(context.Background(), uuid.New(), UpsertProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	out, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
