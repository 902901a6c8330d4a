package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/authz"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/roles"
	"journal.dev/editorial/validate"
)

type createTextRequest struct {
	ManuscriptID string `json:"manuscript_id"`
	PageNumber   string `json:"page_number"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}

type updateTextRequest = createTextRequest

// textWriteRoles gates text-page mutation to editorial staff. spec.md's
// authorization table only names persons and manuscript transitions
// explicitly; text pages are listed only as unprotected for read, so
// mutation policy is this service's own decision (see DESIGN.md).
var textWriteRoles = []roles.Code{roles.Editor, roles.ManagingEditor, roles.ConsultingEditor}

func registerTextRoutes(e *echo.Echo, deps *Deps) {
	e.GET("/text", func(c echo.Context) error {
		manuscriptID := c.QueryParam("manuscript_id")
		if err := validate.NonBlank("manuscript_id", manuscriptID); err != nil {
			return err
		}
		pages, err := deps.Text.ReadByManuscript(requestContext(c), manuscriptID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, pages)
	})

	e.GET("/text/:page", func(c echo.Context) error {
		manuscriptID := c.QueryParam("manuscript_id")
		if err := validate.NonBlank("manuscript_id", manuscriptID); err != nil {
			return err
		}
		p, err := deps.Text.ReadOne(requestContext(c), manuscriptID, c.Param("page"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p)
	})

	e.PUT("/text/create", func(c echo.Context) error {
		if err := requireAnyRole(c, textWriteRoles); err != nil {
			return err
		}
		var req createTextRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.Text.Create(requestContext(c), req.ManuscriptID, req.PageNumber, req.Title, req.Body)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, p)
	})

	e.PUT("/text/update", func(c echo.Context) error {
		if err := requireAnyRole(c, textWriteRoles); err != nil {
			return err
		}
		var req updateTextRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.Text.Update(requestContext(c), req.ManuscriptID, req.PageNumber, req.Title, req.Body)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p)
	})

	e.DELETE("/text/:page", func(c echo.Context) error {
		if err := requireAnyRole(c, textWriteRoles); err != nil {
			return err
		}
		manuscriptID := c.QueryParam("manuscript_id")
		if err := validate.NonBlank("manuscript_id", manuscriptID); err != nil {
			return err
		}
		if err := deps.Text.Delete(requestContext(c), manuscriptID, c.Param("page")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
}

// requireAnyRole fails Unauthenticated/Forbidden unless the caller holds
// one of allowed. Used by resources (text pages, comments) that don't fit the
// (resource, operation) policy map's coarser shape.
func requireAnyRole(c echo.Context, allowed []roles.Code) error {
	caller, ok := GetCaller(c)
	if !ok {
		return errs.New(errs.Unauthenticated, "caller identity required")
	}
	for _, held := range caller.Roles {
		for _, want := range allowed {
			if held == want {
				return nil
			}
		}
	}
	return errs.New(errs.Forbidden, "role set does not permit this operation")
}
