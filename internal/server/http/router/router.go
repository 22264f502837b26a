package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/lunchmicro/lunchsvc/internal/server/http/handlers"
	"github.com/lunchmicro/lunchsvc/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LunchFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api/v1")
	lunches := api.Group("/lunches")
	lunches.POST("/order", orderHandler.Create)
	lunches.DELETE("/:orderId", orderHandler.Cancel)
	lunches.GET("/child/:childId", orderHandler.ListForChild)
	lunches.GET("/parent/:parentId", orderHandler.ListForParent)

	return engine
}
