package routes

import (
	"github.com/gin-gonic/gin"

	"phtrs/internal/interfaces/http/handlers"
)

// WorkOrderRouteConfig holds dependencies for work order routes.
type WorkOrderRouteConfig struct {
	WorkOrderHandler *handlers.WorkOrderHandler
}

// SetupWorkOrderRoutes configures work order routes.
func SetupWorkOrderRoutes(engine *gin.Engine, cfg *WorkOrderRouteConfig) {
	workOrders := engine.Group("/work-orders")
	{
		workOrders.POST("", cfg.WorkOrderHandler.AssignWorkOrder)
		workOrders.POST("/estimate", cfg.WorkOrderHandler.EstimateRepairCost)
	}
}
