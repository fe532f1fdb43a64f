package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

type PlanHandler struct {
	listPlansUC listPlansUseCase
	logger      logger.Interface
}

func NewPlanHandler(listPlansUC listPlansUseCase, logger logger.Interface) *PlanHandler {
	return &PlanHandler{
		listPlansUC: listPlansUC,
		logger:      logger,
	}
}

// ListPlans returns the plan catalogue
// @Summary List plans
// @Description Get every promotion plan in catalogue order
// @Tags Plans
// @Produce json
// @Success 200 {array} dto.PlanDTO
// @Failure 500 {object} utils.MessageResponse
// @Router /api/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, plans)
}
