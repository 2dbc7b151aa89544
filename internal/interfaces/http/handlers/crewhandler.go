package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phtrs/internal/application/crew/dto"
	"phtrs/internal/application/crew/usecases"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
	"phtrs/internal/shared/utils"
)

type CrewHandler struct {
	createCrewUC *usecases.CreateCrewUseCase
	listCrewsUC  *usecases.ListCrewsUseCase
	logger       logger.Interface
}

func NewCrewHandler(
	createCrewUC *usecases.CreateCrewUseCase,
	listCrewsUC *usecases.ListCrewsUseCase,
) *CrewHandler {
	return &CrewHandler{
		createCrewUC: createCrewUC,
		listCrewsUC:  listCrewsUC,
		logger:       logger.NewLogger(),
	}
}

type CreateCrewRequest struct {
	Name string `json:"name"`
}

func (h *CrewHandler) CreateCrew(c *gin.Context) {
	var req CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create crew", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	input := dto.CreateCrewRequest{Name: req.Name}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCrewUC.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Crew created successfully")
}

func (h *CrewHandler) ListCrews(c *gin.Context) {
	result, err := h.listCrewsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Crews retrieved successfully", result)
}
