package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phtrs/internal/application/workorder/dto"
	"phtrs/internal/application/workorder/usecases"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
	"phtrs/internal/shared/utils"
)

type WorkOrderHandler struct {
	assignWorkOrderUC    *usecases.AssignWorkOrderUseCase
	estimateRepairCostUC *usecases.EstimateRepairCostUseCase
	logger               logger.Interface
}

func NewWorkOrderHandler(
	assignWorkOrderUC *usecases.AssignWorkOrderUseCase,
	estimateRepairCostUC *usecases.EstimateRepairCostUseCase,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		assignWorkOrderUC:    assignWorkOrderUC,
		estimateRepairCostUC: estimateRepairCostUC,
		logger:               logger.NewLogger(),
	}
}

type AssignWorkOrderRequest struct {
	PotholeID          uint    `json:"pothole_id"`
	CrewID             uint    `json:"crew_id"`
	NumberOfPeople     int     `json:"number_of_people"`
	EquipmentAssigned  string  `json:"equipment_assigned"`
	HoursApplied       float64 `json:"hours_applied"`
	HoleStatus         string  `json:"hole_status"`
	FillerMaterialUsed float64 `json:"filler_material_used"`
	RepairCost         float64 `json:"repair_cost"`
}

type EstimateCostRequest struct {
	HoursApplied       float64 `json:"hours_applied"`
	NumberOfPeople     int     `json:"number_of_people"`
	FillerMaterialUsed float64 `json:"filler_material_used"`
}

func (h *WorkOrderHandler) AssignWorkOrder(c *gin.Context) {
	var req AssignWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign work order", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	input := dto.AssignWorkOrderRequest{
		PotholeID:          req.PotholeID,
		CrewID:             req.CrewID,
		NumberOfPeople:     req.NumberOfPeople,
		EquipmentAssigned:  req.EquipmentAssigned,
		HoursApplied:       req.HoursApplied,
		HoleStatus:         req.HoleStatus,
		FillerMaterialUsed: req.FillerMaterialUsed,
		RepairCost:         req.RepairCost,
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignWorkOrderUC.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order assigned successfully", result)
}

func (h *WorkOrderHandler) EstimateRepairCost(c *gin.Context) {
	var req EstimateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for estimate repair cost", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	input := dto.EstimateCostRequest{
		HoursApplied:       req.HoursApplied,
		NumberOfPeople:     req.NumberOfPeople,
		FillerMaterialUsed: req.FillerMaterialUsed,
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.estimateRepairCostUC.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repair cost estimated successfully", result)
}
