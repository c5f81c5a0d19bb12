// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/http/middleware"
	"tripsmith/internal/service"
	"tripsmith/internal/tools"
)

// NewRouter builds the gin engine. Only the /api group is token-guarded.
func NewRouter(registry *tools.Registry, planner *service.TravelPlanner, token string, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(token))

	toolHandler := handlers.NewToolHandler(registry, timeout)
	api.GET("/tools", toolHandler.List)
	api.POST("/tools/:name", toolHandler.Call)

	planHandler := handlers.NewPlanHandler(planner, timeout)
	api.POST("/plan", planHandler.Plan)

	return r
}
