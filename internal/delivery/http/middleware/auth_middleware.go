package middleware

import (
	"strings"

	"marquee/internal/domain/entity"
	"marquee/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// PrincipalFrom returns the authenticated principal stored on the request,
// if any. Handlers behind Authenticate can rely on ok being true.
func PrincipalFrom(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.principalFromHeader(c)
		if err != nil {
			return err
		}

		c.Set(principalKey, *principal)

		return next(c)
	}
}

// AuthenticateOptional resolves the principal when a bearer token is present
// and lets the request through anonymously when it is not. A token that is
// present but invalid is still rejected, silently downgrading a broken
// session to anonymous would hide client bugs.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		principal, err := m.principalFromHeader(c)
		if err != nil {
			return err
		}

		c.Set(principalKey, *principal)

		return next(c)
	}
}

// RequireAdmin checks that the authenticated principal holds the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return echo.NewHTTPError(403, "Permission denied: role information missing")
		}

		if !principal.IsAdmin() {
			return echo.NewHTTPError(403, "Permission denied: require 'admin' role")
		}

		return next(c)
	}
}

// principalFromHeader extracts and validates the bearer token, returning the
// principal encoded in its claims.
func (m *AuthMiddleware) principalFromHeader(c echo.Context) (*entity.Principal, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(401, "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.NewHTTPError(401, "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(401, "Invalid or expired token")
	}

	// Refresh tokens never authenticate a request, only access tokens do.
	if claims.Type != service.TokenTypeAccess {
		return nil, echo.NewHTTPError(401, "Token is not an access token")
	}

	return &entity.Principal{UserID: claims.UserID, Role: entity.Role(claims.Role)}, nil
}
