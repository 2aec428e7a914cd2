package usecase

import (
	"context"

	"github.com/google/uuid"

	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/jwt"
	ucauth "devconnect/internal/usecase/auth"
)

type AuthUsecase interface {
	// Register creates the user and returns a signed bearer token whose
	// only claim payload is the new user's id.
	Register(ctx context.Context, in ucauth.RegisterInput) (string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (string, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return "", err
	}

	token, err := u.jwt.Generate(usr.ID)
	if err != nil {
		return "", ucauth.ErrInternal
	}
	return token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return "", err
	}

	token, err := u.jwt.Generate(usr.ID)
	if err != nil {
		return "", ucauth.ErrInternal
	}
	return token, nil
}

func (u *Auth) CurrentUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	return u.authSvc.GetByID(ctx, id)
}

var _ AuthUsecase = (*Auth)(nil)
