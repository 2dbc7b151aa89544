package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/application/pothole/usecases"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
	"phtrs/internal/shared/utils"
)

type PotholeHandler struct {
	reportPotholeUC *usecases.ReportPotholeUseCase
	listPotholesUC  *usecases.ListPotholesUseCase
	getPotholeUC    *usecases.GetPotholeUseCase
	fileDamageUC    *usecases.FileDamageUseCase
	listDamagesUC   *usecases.ListDamagesUseCase
	logger          logger.Interface
}

func NewPotholeHandler(
	reportPotholeUC *usecases.ReportPotholeUseCase,
	listPotholesUC *usecases.ListPotholesUseCase,
	getPotholeUC *usecases.GetPotholeUseCase,
	fileDamageUC *usecases.FileDamageUseCase,
	listDamagesUC *usecases.ListDamagesUseCase,
) *PotholeHandler {
	return &PotholeHandler{
		reportPotholeUC: reportPotholeUC,
		listPotholesUC:  listPotholesUC,
		getPotholeUC:    getPotholeUC,
		fileDamageUC:    fileDamageUC,
		listDamagesUC:   listDamagesUC,
		logger:          logger.NewLogger(),
	}
}

// ReportDamageInput is an optional damage claim filed with a new report.
type ReportDamageInput struct {
	CitizenName  string  `json:"citizen_name"`
	Address      string  `json:"address"`
	PhoneNumber  string  `json:"phone_number"`
	TypeOfDamage string  `json:"type_of_damage"`
	DamageAmount float64 `json:"damage_amount"`
}

type ReportPotholeRequest struct {
	StreetAddress string             `json:"street_address"`
	Size          int                `json:"size"`
	Location      string             `json:"location"`
	District      string             `json:"district"`
	Damage        *ReportDamageInput `json:"damage"`
}

type FileDamageRequest struct {
	CitizenName  string  `json:"citizen_name"`
	Address      string  `json:"address"`
	PhoneNumber  string  `json:"phone_number"`
	TypeOfDamage string  `json:"type_of_damage"`
	DamageAmount float64 `json:"damage_amount"`
}

func (h *PotholeHandler) ReportPothole(c *gin.Context) {
	var req ReportPotholeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report pothole", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	input := dto.ReportPotholeRequest{
		StreetAddress: req.StreetAddress,
		Size:          req.Size,
		Location:      req.Location,
		District:      req.District,
	}
	if req.Damage != nil {
		input.Damage = &dto.DamageInput{
			CitizenName:  req.Damage.CitizenName,
			Address:      req.Damage.Address,
			PhoneNumber:  req.Damage.PhoneNumber,
			TypeOfDamage: req.Damage.TypeOfDamage,
			DamageAmount: req.Damage.DamageAmount,
		}
	}

	if err := utils.ValidateStruct(&input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reportPotholeUC.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pothole reported successfully")
}

func (h *PotholeHandler) ListPotholes(c *gin.Context) {
	result, err := h.listPotholesUC.Execute(c.Request.Context(), usecases.ListPotholesQuery{
		District: c.Query("district"),
		Status:   c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Potholes retrieved successfully", result)
}

func (h *PotholeHandler) GetPothole(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPotholeUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pothole retrieved successfully", result)
}

func (h *PotholeHandler) FileDamage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req FileDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for file damage", "pothole_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	input := dto.FileDamageRequest{
		PotholeID:    id,
		CitizenName:  req.CitizenName,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		TypeOfDamage: req.TypeOfDamage,
		DamageAmount: req.DamageAmount,
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.fileDamageUC.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Damage claim filed successfully")
}

func (h *PotholeHandler) ListPotholeDamages(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listDamagesUC.Execute(c.Request.Context(), &id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Damage claims retrieved successfully", result)
}

func (h *PotholeHandler) ListDamages(c *gin.Context) {
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

	result, err := h.listDamagesUC.Execute(c.Request.Context(), potholeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Damage claims retrieved successfully", result)
}

func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewBadRequestError("invalid ID parameter")
	}
	return uint(parsed), nil
}
