package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)

// unauthorized writes a 401 with the WWW-Authenticate challenge the
// bearer scheme requires.
func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, util.Error(message))
}

// RequireAuth resolves the Authorization header to an account and stores
// it on the request context. Any failure produces the same 401.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				return unauthorized(c, service.ErrUnauthorized.Error())
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, service.ErrUnauthorized.Error())
			}
			token := strings.TrimSpace(parts[1])
			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return unauthorized(c, service.ErrUnauthorized.Error())
			}
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

// RequireActive rejects deactivated accounts after RequireAuth has
// resolved the session. The distinction matters: a bad token is a 401,
// a valid token for a disabled account is a 400.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || user == nil {
				return unauthorized(c, service.ErrUnauthorized.Error())
			}
			if !user.IsActive {
				return c.JSON(http.StatusBadRequest, util.Error(service.ErrInactiveUser.Error()))
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok
}
