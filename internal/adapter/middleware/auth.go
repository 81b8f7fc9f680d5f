package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/domain/master"
	"lppm-backend/pkg/token"
)

const actorContextKey = "auth.actor"

// Auth validates the Bearer token and stores the caller as a master.Actor in
// the request context. Handlers read it back with ActorFrom.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := token.Parse(secret, strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(actorContextKey, master.Actor{UserID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles. Must run after Auth.
func RequireRole(roles ...master.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

func ActorFrom(c echo.Context) (master.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(master.Actor)
	return actor, ok
}
