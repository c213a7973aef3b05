package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core"
)

func (api *portalApi) registerEnrollRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("/enrollments", api.enroll, jwt)
}

func (api *portalApi) enroll(ctx echo.Context) error {
	var data EnrollRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EnrollRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	// the token holder may only enroll themselves
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if core.CleanString(claims.Email, true /* lower */) != data.UserEmail {
		return errHttpForbidden
	}

	enr, err := api.store.RecordEnrollment(data.UserEmail, data.BatchID)
	if err != nil {
		switch err {
		case errUnknownBatch:
			return core.NewValidationError(err, core.FieldError{Field: "batchId", Error: err.Error()})
		case errDepartmentConflict:
			return errHttpConflict
		}
		return errors.Wrap(err, "recording enrollment")
	}

	msg := fmt.Sprintf("You are now enrolled in %s", enr.Department)
	return ctx.JSON(http.StatusCreated, MessageResponse{Message: msg})
}
