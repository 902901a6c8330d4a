package api

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"journal.dev/editorial/auth"
	"journal.dev/editorial/comments"
	"journal.dev/editorial/manuscripts"
	"journal.dev/editorial/people"
	"journal.dev/editorial/text"
)

// Deps bundles every collaborator the HTTP layer depends on, following the
// teacher's convention of an explicit dependency struct passed into route
// registration rather than package-level globals.
type Deps struct {
	People      *people.Store
	Manuscripts *manuscripts.Store
	Executor    *manuscripts.Executor
	Text        *text.Store
	Comments    *comments.Store
	Auth        *auth.Authenticator
	Log         *logrus.Entry
	Title       string
	// BcryptCost hashes passwords set via POST /people/create, mirroring
	// the cost auth.Authenticator was built with.
	BcryptCost int
}

// RegisterRoutes wires every endpoint from spec.md §6 onto e, grouping
// handlers by resource the way statemanager/handlers.go groups its routes.
func RegisterRoutes(e *echo.Echo, deps *Deps) {
	e.Use(CallerMiddleware(deps.People))

	registerMiscRoutes(e, deps)
	registerAuthRoutes(e, deps)
	registerPeopleRoutes(e, deps)
	registerTextRoutes(e, deps)
	registerManuscriptRoutes(e, deps)
	registerCommentRoutes(e, deps)
}
