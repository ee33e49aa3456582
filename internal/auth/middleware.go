package auth

import (
	"github.com/labstack/echo/v4"

	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
)

// contextKey is the echo context key the JWT middleware stores claims under.
const contextKey = "user"

// ParseTokenFunc adapts JWTService.Validate to echo-jwt's ParseTokenFunc so
// the middleware stores *Claims directly instead of a raw token.
func (s *JWTService) ParseTokenFunc(c echo.Context, tokenString string) (interface{}, error) {
	return s.Validate(tokenString)
}

// ClaimsFrom extracts the verified claims placed on the context by the JWT
// middleware. The second return is false on routes the middleware never ran.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(contextKey).(*Claims)
	return claims, ok
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// The role is trusted from the token claim and not re-checked against the
// store, so a demotion only bites at the user's next login or renew.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return c.JSON(he.StatusCode, he.ToErrorResponse())
		}
		if claims.Role != model.RoleAdmin {
			he := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return c.JSON(he.StatusCode, he.ToErrorResponse())
		}
		return next(c)
	}
}
