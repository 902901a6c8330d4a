package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/errs"
	"journal.dev/editorial/roles"
)

type createCommentRequest struct {
	ManuscriptID string `json:"manuscript_id"`
	Text         string `json:"text"`
}

type updateCommentRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// commentWriteRoles: SPEC_FULL.md §6 gates comment mutation to editors and
// referees ({ED, ME, RE}); reads stay unauthenticated.
var commentWriteRoles = []roles.Code{roles.Editor, roles.ManagingEditor, roles.Referee}

func registerCommentRoutes(e *echo.Echo, deps *Deps) {
	e.GET("/comments/:manuscript_id", func(c echo.Context) error {
		list, err := deps.Comments.ReadByManuscript(requestContext(c), c.Param("manuscript_id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, list)
	})

	e.POST("/comments/create", func(c echo.Context) error {
		if err := requireAnyRole(c, commentWriteRoles); err != nil {
			return err
		}
		var req createCommentRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		if err := deps.Manuscripts.Exists(requestContext(c), req.ManuscriptID); err != nil {
			return err
		}
		caller, _ := GetCaller(c)
		comment, err := deps.Comments.Create(requestContext(c), req.ManuscriptID, caller.ID, req.Text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, comment)
	})

	e.PUT("/comments/update", func(c echo.Context) error {
		if err := requireAnyRole(c, commentWriteRoles); err != nil {
			return err
		}
		var req updateCommentRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		comment, err := deps.Comments.Update(requestContext(c), req.ID, req.Text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, comment)
	})

	e.DELETE("/comments/:id", func(c echo.Context) error {
		if err := requireAnyRole(c, commentWriteRoles); err != nil {
			return err
		}
		if err := deps.Comments.Delete(requestContext(c), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
}
