package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/errs"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(e *echo.Echo, deps *Deps) {
	e.POST("/auth/register", func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.Auth.Register(requestContext(c), req.Name, req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, p)
	})

	e.POST("/auth/login", func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.Auth.Login(requestContext(c), req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p)
	})
}
