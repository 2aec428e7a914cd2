package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/jwt"
	ucauth "devconnect/internal/usecase/auth"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	deleted []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func TestAuthUsecase_RegisterIssuesValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(repo, jwtSvc)

	token, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtSvc.Validate(token)
	require.NoError(t, err)

	stored := repo.byEmail["alice@example.com"]
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestAuthUsecase_LoginIssuesTokenForSameUser(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(repo, jwtSvc)

	_, err := uc.Register(context.Background(), ucauth.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	token, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := jwtSvc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["alice@example.com"].ID, claims.UserID)

	_, err = uc.Login(context.Background(), ucauth.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	_, err := uc.Register(context.Background(), ucauth.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	id := repo.byEmail["alice@example.com"].ID

	u, err := uc.CurrentUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Empty(t, u.PasswordHash)

	_, err = uc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
