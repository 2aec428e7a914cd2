package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"devconnect/internal/domain/user"
)

// memUserRepo is an in-memory user.Repository keyed by email, enough to
// exercise the credential rules without a database.
type memUserRepo struct {
	byEmail map[string]user.User

	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func TestRegister_HashesPasswordAndSetsAvatar(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.COM",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Contains(t, u.Avatar, "gravatar.com/avatar/")
	assert.Empty(t, u.PasswordHash, "returned user must not carry the hash")

	stored := repo.byEmail["alice@example.com"]
	require.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Other", Email: " ALICE@example.com ", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := NewService(newMemUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Name: "  ", Email: "alice@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	reg, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, reg.ID, u.ID)
		assert.Empty(t, u.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetByID(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	reg, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	u, err := svc.GetByID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Empty(t, u.PasswordHash)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
