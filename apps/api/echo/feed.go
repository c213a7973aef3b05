package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (api *portalApi) registerFeedRoutes(g *echo.Group) {
	g.GET("/events", api.listEvents)
	g.GET("/news", api.listNews)
}

func (api *portalApi) listEvents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.ListEvents())
}

func (api *portalApi) listNews(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.ListNews())
}
