package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

type SeedHandler struct {
	seedUC seedDataUseCase
	logger logger.Interface
}

func NewSeedHandler(seedUC seedDataUseCase, logger logger.Interface) *SeedHandler {
	return &SeedHandler{seedUC: seedUC, logger: logger}
}

// Seed installs the default admin and plan catalogue once
// @Summary Seed data
// @Tags Seed
// @Produce json
// @Success 200 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /api/seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageOKResponse(c, result.Message)
}
