package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/authz"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/manuscripts"
)

type createManuscriptRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	AuthorEmail string `json:"author_email"`
	EditorEmail string `json:"editor_email"`
	Abstract    string `json:"abstract"`
	Body        string `json:"body"`
}

type updateManuscriptRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	EditorEmail string `json:"editor_email"`
	Abstract    string `json:"abstract"`
}

type updateStateRequest struct {
	ID      string             `json:"id"`
	Action  manuscripts.Action `json:"action"`
	Referee string             `json:"referee,omitempty"`
}

func registerManuscriptRoutes(e *echo.Echo, deps *Deps) {
	e.GET("/manuscript", func(c echo.Context) error {
		all, err := deps.Manuscripts.Enumerate(requestContext(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, all)
	})

	e.GET("/manuscript/valid_actions/:state", func(c echo.Context) error {
		state := manuscripts.StateCode(c.Param("state"))
		return c.JSON(http.StatusOK, manuscripts.LegalActions(state))
	})

	e.GET("/manuscript/editor_actions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []manuscripts.Action{
			manuscripts.AssignReferee, manuscripts.DeleteReferee,
			manuscripts.Accept, manuscripts.AcceptWithRevisions,
			manuscripts.Reject, manuscripts.Done,
		})
	})

	e.GET("/manuscript/referee_actions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []manuscripts.Action{manuscripts.SubmitReview})
	})

	e.GET("/manuscript/:id", func(c echo.Context) error {
		m, err := deps.Manuscripts.Read(requestContext(c), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, m)
	})

	e.PUT("/manuscript/create", func(c echo.Context) error {
		var req createManuscriptRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		m, err := deps.Manuscripts.Create(requestContext(c), req.Title, req.Author, req.AuthorEmail, req.EditorEmail, req.Abstract)
		if err != nil {
			return err
		}
		// spec.md §3: page "1" is auto-created from the initial submission
		// body. A missing body leaves the manuscript created with no pages
		// rather than failing the whole creation.
		if req.Body != "" {
			if _, err := deps.Text.Create(requestContext(c), m.ID, "1", req.Title, req.Body); err != nil {
				return err
			}
		}
		return c.JSON(http.StatusCreated, m)
	})

	e.PUT("/manuscript/update", func(c echo.Context) error {
		var req updateManuscriptRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		m, err := deps.Manuscripts.Update(requestContext(c), req.ID, req.Title, req.Author, req.EditorEmail, req.Abstract)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, m)
	})

	e.PUT("/manuscript/update_state", func(c echo.Context) error {
		var req updateStateRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}

		m, err := deps.Manuscripts.Read(requestContext(c), req.ID)
		if err != nil {
			return err
		}
		caller, _ := GetCaller(c)
		if err := authorizeTransition(caller, m, req.Action); err != nil {
			return err
		}

		updated, err := deps.Executor.Transition(requestContext(c), req.ID, req.Action, req.Referee)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, updated)
	})

	e.DELETE("/manuscript/:id", func(c echo.Context) error {
		caller, _ := GetCaller(c)
		if err := checkCaller(caller, authz.ResourceManuscript, "DON"); err != nil {
			// Deletion shares the editorial-staff gate used for the
			// destructive transitions; there's no dedicated delete entry
			// in the policy map (see DESIGN.md).
			return err
		}
		if err := deps.Text.DeleteByManuscript(requestContext(c), c.Param("id")); err != nil {
			return err
		}
		if err := deps.Manuscripts.Delete(requestContext(c), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
}

// authorizeTransition implements spec.md §4.4's three-way gate on
// manuscript transitions: WIT by the author (identity match), SBR by the
// assigned referee (identity match), everything else by role membership.
func authorizeTransition(caller *AuthContext, m *manuscripts.Manuscript, action manuscripts.Action) error {
	if caller == nil {
		return errs.New(errs.Unauthenticated, "caller identity required")
	}

	switch action {
	case manuscripts.Withdraw:
		if authz.AuthorMatches(m.AuthorEmail, caller.Email) {
			return nil
		}
		// Editors may also withdraw on the author's behalf.
		return checkCaller(caller, authz.ResourceManuscript, "WIT")
	case manuscripts.SubmitReview:
		if !authz.RefereeMatches(m.Referees, caller.ID) && !authz.RefereeMatches(m.Referees, caller.Email) {
			return errs.New(errs.Forbidden, "caller is not an assigned referee on this manuscript")
		}
		return checkCaller(caller, authz.ResourceManuscript, authz.Operation(action))
	default:
		return checkCaller(caller, authz.ResourceManuscript, authz.Operation(action))
	}
}
