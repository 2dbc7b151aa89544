package routes

import (
	"github.com/gin-gonic/gin"

	"phtrs/internal/interfaces/http/handlers"
)

// PotholeRouteConfig holds dependencies for pothole routes.
type PotholeRouteConfig struct {
	PotholeHandler *handlers.PotholeHandler
}

// SetupPotholeRoutes configures pothole and damage claim routes.
func SetupPotholeRoutes(engine *gin.Engine, cfg *PotholeRouteConfig) {
	potholes := engine.Group("/potholes")
	{
		potholes.POST("", cfg.PotholeHandler.ReportPothole)
		potholes.GET("", cfg.PotholeHandler.ListPotholes)
		potholes.GET("/:id", cfg.PotholeHandler.GetPothole)
		potholes.POST("/:id/damages", cfg.PotholeHandler.FileDamage)
		potholes.GET("/:id/damages", cfg.PotholeHandler.ListPotholeDamages)
	}

	engine.GET("/damages", cfg.PotholeHandler.ListDamages)
}
