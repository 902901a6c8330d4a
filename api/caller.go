// Package api wires the manuscript lifecycle engine and its collaborators
// to HTTP, following the echo.Context-as-request-scoped-value-bag pattern
// the teacher repo uses for carrying authenticated identity.
package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/people"
	"journal.dev/editorial/roles"
)

// contextKeyCaller is the echo.Context key AuthContext is stored under.
const contextKeyCaller = "caller"

// AuthContext is the resolved identity of the party making the request,
// carried on echo.Context for the lifetime of one HTTP request. It's the
// SetUser/GetUser pattern generalized to this domain's caller concept.
type AuthContext struct {
	ID    string
	Email string
	Roles []roles.Code
}

// SetCaller stores the resolved caller on the Echo context.
func SetCaller(c echo.Context, caller *AuthContext) {
	c.Set(contextKeyCaller, caller)
}

// GetCaller retrieves the resolved caller from the Echo context, if any.
func GetCaller(c echo.Context) (*AuthContext, bool) {
	caller, ok := c.Get(contextKeyCaller).(*AuthContext)
	return caller, ok && caller != nil
}

// CallerMiddleware resolves the X-User-Id header (spec.md §6: "either the
// stable person ID or the email") against the person store and attaches an
// AuthContext to the request. A missing or unresolvable header simply
// leaves no caller attached; whether that's acceptable is decided per
// endpoint by authz checks, not by this middleware.
func CallerMiddleware(peopleStore *people.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("X-User-Id")
			if raw == "" {
				return next(c)
			}
			p, err := peopleStore.Read(requestContext(c), people.ParseIdentifier(raw))
			if err != nil {
				return next(c)
			}
			SetCaller(c, &AuthContext{ID: p.ID, Email: p.Email, Roles: p.Roles})
			return next(c)
		}
	}
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}
