package router

import (
	"gameReco/internal/rest"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupGameRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	games := api.Group("/games", authRequired)

	games.GET("/:id/more", handler.MoreGames)
	games.GET("/:id/more/debug", handler.DebugMoreGames, adminOnly)
	games.GET("/:id/similar", handler.SimilarGames)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
