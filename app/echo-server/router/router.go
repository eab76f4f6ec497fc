package router

import (
	"offerOptimizer/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetOptimizerRoutes(api *echo.Group, handler *rest.OptimizerHandler) {
	api.POST("/optimize", handler.Optimize)
	api.POST("/optimize/debug", handler.OptimizeDebug)
}
