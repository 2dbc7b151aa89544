package routes

import (
	"github.com/gin-gonic/gin"

	"phtrs/internal/interfaces/http/handlers"
)

// StatsRouteConfig holds dependencies for statistics routes.
type StatsRouteConfig struct {
	StatsHandler *handlers.StatsHandler
}

// SetupStatsRoutes configures statistics routes.
func SetupStatsRoutes(engine *gin.Engine, cfg *StatsRouteConfig) {
	stats := engine.Group("/stats")
	{
		stats.GET("/overview", cfg.StatsHandler.GetOverview)
		stats.GET("/work-orders", cfg.StatsHandler.GetWorkOrderStats)
		stats.GET("/damages", cfg.StatsHandler.GetDamageStats)
		stats.GET("/crews", cfg.StatsHandler.GetCrewStats)
	}
}
