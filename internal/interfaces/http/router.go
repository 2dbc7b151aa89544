package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	crewUsecases "phtrs/internal/application/crew/usecases"
	potholeUsecases "phtrs/internal/application/pothole/usecases"
	statsUsecases "phtrs/internal/application/stats/usecases"
	workorderUsecases "phtrs/internal/application/workorder/usecases"
	"phtrs/internal/infrastructure/config"
	"phtrs/internal/infrastructure/repository"
	"phtrs/internal/interfaces/http/handlers"
	"phtrs/internal/interfaces/http/middleware"
	"phtrs/internal/interfaces/http/routes"
	"phtrs/internal/shared/db"
	"phtrs/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewRouter builds the full HTTP surface on top of the given database handle.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	potholeRepo := repository.NewPotholeRepository(database)
	damageRepo := repository.NewDamageRepository(database)
	workOrderRepo := repository.NewWorkOrderRepository(database)
	crewRepo := repository.NewCrewRepository(database)
	potholeQueryRepo := repository.NewPotholeQueryRepository(database, log)
	statsRepo := repository.NewStatsRepository(database, log)
	txManager := db.NewTransactionManager(database)

	// Use cases
	reportPotholeUC := potholeUsecases.NewReportPotholeUseCase(potholeRepo, damageRepo, txManager, log)
	listPotholesUC := potholeUsecases.NewListPotholesUseCase(potholeQueryRepo, log)
	getPotholeUC := potholeUsecases.NewGetPotholeUseCase(potholeQueryRepo, damageRepo, log)
	fileDamageUC := potholeUsecases.NewFileDamageUseCase(potholeRepo, damageRepo, log)
	listDamagesUC := potholeUsecases.NewListDamagesUseCase(statsRepo, log)

	assignWorkOrderUC := workorderUsecases.NewAssignWorkOrderUseCase(potholeRepo, crewRepo, workOrderRepo, log)
	estimateRepairCostUC := workorderUsecases.NewEstimateRepairCostUseCase(log)

	createCrewUC := crewUsecases.NewCreateCrewUseCase(crewRepo, log)
	listCrewsUC := crewUsecases.NewListCrewsUseCase(crewRepo, log)

	getOverviewUC := statsUsecases.NewGetOverviewUseCase(statsRepo, log)
	getWorkOrderStatsUC := statsUsecases.NewGetWorkOrderStatsUseCase(statsRepo, log)
	getDamageStatsUC := statsUsecases.NewGetDamageStatsUseCase(statsRepo, log)
	getCrewStatsUC := statsUsecases.NewGetCrewStatsUseCase(statsRepo, log)

	// Handlers
	potholeHandler := handlers.NewPotholeHandler(reportPotholeUC, listPotholesUC, getPotholeUC, fileDamageUC, listDamagesUC)
	workOrderHandler := handlers.NewWorkOrderHandler(assignWorkOrderUC, estimateRepairCostUC)
	crewHandler := handlers.NewCrewHandler(createCrewUC, listCrewsUC)
	statsHandler := handlers.NewStatsHandler(getOverviewUC, getWorkOrderStatsUC, getDamageStatsUC, getCrewStatsUC)

	routes.SetupPotholeRoutes(engine, &routes.PotholeRouteConfig{PotholeHandler: potholeHandler})
	routes.SetupWorkOrderRoutes(engine, &routes.WorkOrderRouteConfig{WorkOrderHandler: workOrderHandler})
	routes.SetupCrewRoutes(engine, &routes.CrewRouteConfig{CrewHandler: crewHandler})
	routes.SetupStatsRoutes(engine, &routes.StatsRouteConfig{StatsHandler: statsHandler})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{engine: engine, cfg: cfg}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	return r.engine.Run(r.cfg.Server.GetAddr())
}
