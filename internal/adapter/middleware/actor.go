package middleware

import (
	"net/http"
	"strings"

	"shopadmin-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Actor is the staff identity extracted from the request headers. The
// gateway in front of this service authenticates staff and forwards identity
// via Ax-Staff-Id / Ax-Staff-Name; handlers thread it explicitly into the
// workflow operations.
type Actor struct {
	StaffID   string
	StaffName string
}

// RequireActor rejects requests without a well-formed staff identity before
// the handler runs.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			staffID := strings.TrimSpace(c.Request().Header.Get("Ax-Staff-Id"))
			if staffID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "missing Ax-Staff-Id",
				})
			}
			if !id.Valid(staffID) {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "invalid Ax-Staff-Id",
				})
			}
			c.Set(actorContextKey, Actor{
				StaffID:   staffID,
				StaffName: strings.TrimSpace(c.Request().Header.Get("Ax-Staff-Name")),
			})
			return next(c)
		}
	}
}

// ActorFrom returns the actor set by RequireActor; zero value when absent.
func ActorFrom(c echo.Context) Actor {
	if a, ok := c.Get(actorContextKey).(Actor); ok {
		return a
	}
	return Actor{}
}
