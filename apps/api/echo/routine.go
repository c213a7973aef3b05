package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core"
	"github.com/Tahsina2226/course-event-management/core/routine"
)

func (api *portalApi) registerRoutineRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	rg := g.Group("/routines")
	rg.GET("", api.listRoutines)

	// mutations are admin-only
	mg := rg.Group("", jwt, adminMiddleware())
	mg.POST("", api.createRoutine)
	mg.PUT("/:id", api.updateRoutine)
	mg.DELETE("/:id", api.deleteRoutine)
}

func (api *portalApi) listRoutines(ctx echo.Context) error {
	department := core.CleanString(ctx.QueryParam("department"))
	return ctx.JSON(http.StatusOK, api.store.ListRoutines(department))
}

func (api *portalApi) createRoutine(ctx echo.Context) error {
	var data routine.NewRoutine
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRoutine")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	r, err := api.store.CreateRoutine(data)
	if err != nil {
		if err == errUnknownBatch {
			return core.NewValidationError(err, core.FieldError{Field: "batch_id", Error: err.Error()})
		}
		return errors.Wrap(err, "creating routine")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *portalApi) updateRoutine(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	var data routine.UpdateRoutine
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRoutine")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	r, err := api.store.UpdateRoutine(id, data)
	if err != nil {
		switch err {
		case errNotFound:
			return errHttpNotFound
		case errUnknownBatch:
			return core.NewValidationError(err, core.FieldError{Field: "batch_id", Error: err.Error()})
		}
		return errors.Wrap(err, "updating routine")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *portalApi) deleteRoutine(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	if err := api.store.DeleteRoutine(id); err != nil {
		if err == errNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting routine")
	}
	return ctx.NoContent(http.StatusNoContent)
}
