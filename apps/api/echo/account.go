package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core"
)

func (api *portalApi) registerAuthRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	ag := g.Group("/admin")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)

	// enrollment lookup rides on the auth group's concerns: it answers
	// "what department does this account hold"
	g.GET("/enroll/:email", api.lookupEnrollment, jwt)
}

func (api *portalApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	acct, err := authenticate(data.Email, data.Password, api.store)
	if err != nil {
		return err
	}
	token, err := generateToken(api.conf, getAccountClaims(api.conf, acct))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, AuthResponse{Token: token, Role: acct.Role})
}

func (api *portalApi) register(ctx echo.Context) error {
	var data RegisterRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RegisterRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	acct := &Account{Name: data.Name, Email: data.Email, Role: data.Role}
	if err := acct.SetPassword(data.Password); err != nil {
		return errors.Wrap(err, "setting password")
	}
	if err := api.store.CreateAccount(acct); err != nil {
		if err == errEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return errors.Wrap(err, "creating account")
	}

	token, err := generateToken(api.conf, getAccountClaims(api.conf, acct))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, AuthResponse{Token: token, Role: acct.Role})
}

func (api *portalApi) lookupEnrollment(ctx echo.Context) error {
	email := core.CleanString(ctx.Param("email"), true /* lower */)
	enr, err := api.store.GetEnrollment(email)
	if err != nil {
		if err == errNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "looking up enrollment")
	}
	return ctx.JSON(http.StatusOK, DepartmentResponse{BatchDepartment: enr.Department})
}
