package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core/batch"
)

func (api *portalApi) registerBatchRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	bg := g.Group("/batches")
	bg.GET("", api.listBatches)

	// mutations are admin-only
	mg := bg.Group("", jwt, adminMiddleware())
	mg.POST("", api.createBatch)
	mg.PUT("/:id", api.updateBatch)
	mg.DELETE("/:id", api.deleteBatch)
}

func (api *portalApi) listBatches(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.ListBatches())
}

func (api *portalApi) createBatch(ctx echo.Context) error {
	var data batch.NewBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBatch")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.CreateBatch(data))
}

func (api *portalApi) updateBatch(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	var data batch.UpdateBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateBatch")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	b, err := api.store.UpdateBatch(id, data)
	if err != nil {
		if err == errNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating batch")
	}
	return ctx.JSON(http.StatusOK, b)
}

func (api *portalApi) deleteBatch(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	if err := api.store.DeleteBatch(id); err != nil {
		if err == errNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting batch")
	}
	return ctx.NoContent(http.StatusNoContent)
}
