package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/roles"
)

// endpointList is returned verbatim by GET /endpoints for introspection.
var endpointList = []string{
	"GET /hello", "GET /endpoints", "GET /title", "GET /roles",
	"GET /people", "GET /people/{id}", "PUT /people/{id}", "DELETE /people/{id}",
	"POST /people/create", "PUT /people/add_role", "DELETE /people/delete_role",
	"GET /people/masthead",
	"GET /text", "GET /text/{page}", "PUT /text/create", "PUT /text/update", "DELETE /text/{page}",
	"GET /manuscript", "GET /manuscript/{id}", "PUT /manuscript/create", "PUT /manuscript/update",
	"PUT /manuscript/update_state", "DELETE /manuscript/{id}",
	"GET /manuscript/valid_actions/{state}", "GET /manuscript/editor_actions", "GET /manuscript/referee_actions",
	"GET /comments/{manuscript_id}", "POST /comments/create", "PUT /comments/update", "DELETE /comments/{id}",
	"POST /auth/register", "POST /auth/login",
}

func registerMiscRoutes(e *echo.Echo, deps *Deps) {
	e.GET("/hello", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "hello from the journal editorial service"})
	})
	e.GET("/endpoints", func(c echo.Context) error {
		return c.JSON(http.StatusOK, endpointList)
	})
	e.GET("/title", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"title": deps.Title})
	})
	e.GET("/roles", func(c echo.Context) error {
		return c.JSON(http.StatusOK, roles.All())
	})
}
