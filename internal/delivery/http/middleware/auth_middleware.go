package middleware

import (
	"strings"

	"devconnect/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// HeaderAuthToken carries the bearer token on protected routes.
const HeaderAuthToken = "x-auth-token"

const CtxUserIDKey = "user_id"

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(HeaderAuthToken))
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, msgNoToken, nil, nil)
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, msgInvalidToken, nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserIDFromCtx returns the authenticated user's id set by the middleware.
func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok
}
