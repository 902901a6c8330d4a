package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"journal.dev/editorial/authz"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/people"
	"journal.dev/editorial/roles"
	"journal.dev/editorial/security"
)

type createPersonRequest struct {
	Name        string       `json:"name"`
	Affiliation string       `json:"affiliation"`
	Email       string       `json:"email"`
	Roles       []roles.Code `json:"roles"`
	Bio         string       `json:"bio"`
	Password    string       `json:"password"`
}

type updatePersonRequest struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Bio         string `json:"bio"`
}

type roleRequest struct {
	ID   string     `json:"id"`
	Role roles.Code `json:"role"`
}

func registerPeopleRoutes(e *echo.Echo, deps *Deps) {
	e.GET("/people", func(c echo.Context) error {
		all, err := deps.People.Enumerate(requestContext(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, people.ScrubAll(all))
	})

	e.GET("/people/masthead", func(c echo.Context) error {
		m, err := deps.People.Masthead(requestContext(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, m)
	})

	e.POST("/people/create", func(c echo.Context) error {
		empty, err := deps.People.IsEmpty(requestContext(c))
		if err != nil {
			return err
		}
		if !empty {
			caller, _ := GetCaller(c)
			if err := checkCaller(caller, authz.ResourcePerson, authz.OpUpdatePerson); err != nil {
				return err
			}
		}

		var req createPersonRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		var hash string
		if req.Password != "" {
			h, err := security.HashPasswordWithCost(req.Password, deps.BcryptCost)
			if err != nil {
				return errs.Wrap(errs.Internal, "hash password", err)
			}
			hash = h
		}
		p, err := deps.People.Create(requestContext(c), &people.Person{
			Name:         req.Name,
			Affiliation:  req.Affiliation,
			Email:        req.Email,
			Roles:        req.Roles,
			Bio:          req.Bio,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, p.Scrub())
	})

	e.PUT("/people/add_role", func(c echo.Context) error {
		caller, _ := GetCaller(c)
		if err := checkCaller(caller, authz.ResourcePerson, authz.OpAddRole); err != nil {
			return err
		}
		var req roleRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.People.AddRole(requestContext(c), req.ID, req.Role)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p.Scrub())
	})

	e.DELETE("/people/delete_role", func(c echo.Context) error {
		caller, _ := GetCaller(c)
		if err := checkCaller(caller, authz.ResourcePerson, authz.OpDeleteRole); err != nil {
			return err
		}
		var req roleRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.People.DeleteRole(requestContext(c), req.ID, req.Role)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p.Scrub())
	})

	e.GET("/people/:id", func(c echo.Context) error {
		p, err := deps.People.Read(requestContext(c), people.ParseIdentifier(c.Param("id")))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p.Scrub())
	})

	e.PUT("/people/:id", func(c echo.Context) error {
		caller, _ := GetCaller(c)
		if err := checkCaller(caller, authz.ResourcePerson, authz.OpUpdatePerson); err != nil {
			return err
		}
		var req updatePersonRequest
		if err := c.Bind(&req); err != nil {
			return errs.New(errs.InvalidArgument, "malformed request body")
		}
		p, err := deps.People.Update(requestContext(c), c.Param("id"), req.Name, req.Affiliation, req.Bio)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p.Scrub())
	})

	e.DELETE("/people/:id", func(c echo.Context) error {
		caller, _ := GetCaller(c)
		if err := checkCaller(caller, authz.ResourcePerson, authz.OpDeletePerson); err != nil {
			return err
		}
		if err := deps.People.Delete(requestContext(c), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
}

// checkCaller adapts an (optional) *AuthContext into authz.Check's
// (id, roles) shape.
func checkCaller(caller *AuthContext, resource authz.Resource, op authz.Operation) error {
	if caller == nil {
		return authz.Check(resource, op, "", nil)
	}
	return authz.Check(resource, op, caller.ID, caller.Roles)
}
