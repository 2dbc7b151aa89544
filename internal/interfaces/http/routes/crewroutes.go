package routes

import (
	"github.com/gin-gonic/gin"

	"phtrs/internal/interfaces/http/handlers"
)

// CrewRouteConfig holds dependencies for crew routes.
type CrewRouteConfig struct {
	CrewHandler *handlers.CrewHandler
}

// SetupCrewRoutes configures repair crew routes.
func SetupCrewRoutes(engine *gin.Engine, cfg *CrewRouteConfig) {
	crews := engine.Group("/crews")
	{
		crews.POST("", cfg.CrewHandler.CreateCrew)
		crews.GET("", cfg.CrewHandler.ListCrews)
	}
}
