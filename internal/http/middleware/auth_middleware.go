package middleware

import (
	"net/http"

	"studyboard/internal/domain/entity"
	"studyboard/internal/utils"
	"studyboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// SessionResolver resolves a stored token hash back to its user.
type SessionResolver interface {
	FindUserByTokenHash(hash string, now int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	Sessions SessionResolver
}

// NewAuthMiddleware guards routes that mutate content. The bearer token
// is opaque; the actor's identity comes exclusively from the server-held
// session it references, never from anything the client asserts.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := utils.BearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			user, err := cfg.Sessions.FindUserByTokenHash(utils.HashToken(token), utils.NowUTC())
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Unknown, revoked or expired session
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
