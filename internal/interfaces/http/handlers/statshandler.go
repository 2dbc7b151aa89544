package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phtrs/internal/application/stats/usecases"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
	"phtrs/internal/shared/utils"
)

type StatsHandler struct {
	getOverviewUC       *usecases.GetOverviewUseCase
	getWorkOrderStatsUC *usecases.GetWorkOrderStatsUseCase
	getDamageStatsUC    *usecases.GetDamageStatsUseCase
	getCrewStatsUC      *usecases.GetCrewStatsUseCase
	logger              logger.Interface
}

func NewStatsHandler(
	getOverviewUC *usecases.GetOverviewUseCase,
	getWorkOrderStatsUC *usecases.GetWorkOrderStatsUseCase,
	getDamageStatsUC *usecases.GetDamageStatsUseCase,
	getCrewStatsUC *usecases.GetCrewStatsUseCase,
) *StatsHandler {
	return &StatsHandler{
		getOverviewUC:       getOverviewUC,
		getWorkOrderStatsUC: getWorkOrderStatsUC,
		getDamageStatsUC:    getDamageStatsUC,
		getCrewStatsUC:      getCrewStatsUC,
		logger:              logger.NewLogger(),
	}
}

func (h *StatsHandler) GetOverview(c *gin.Context) {
	result, err := h.getOverviewUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved successfully", result)
}

func (h *StatsHandler) GetWorkOrderStats(c *gin.Context) {
	result, err := h.getWorkOrderStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order statistics retrieved successfully", result)
}

func (h *StatsHandler) GetDamageStats(c *gin.Context) {
	var potholeID *uint
	if raw := c.Query("pothole_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid pothole_id"))
			return
		}
		id := uint(parsed)
		potholeID = &id
	}

	result, err := h.getDamageStatsUC.Execute(c.Request.Context(), potholeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Damage statistics retrieved successfully", result)
}

func (h *StatsHandler) GetCrewStats(c *gin.Context) {
	result, err := h.getCrewStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Crew statistics retrieved successfully", result)
}
