package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminUsecases "github.com/brt06a/Testv5/internal/application/admin/usecases"
	"github.com/brt06a/Testv5/internal/interfaces/http/middleware"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

type AdminHandler struct {
	loginUC        loginUseCase
	logoutUC       logoutUseCase
	listPaymentsUC listPaymentsUseCase
	logger         logger.Interface
}

func NewAdminHandler(
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	listPaymentsUC listPaymentsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		loginUC:        loginUC,
		logoutUC:       logoutUC,
		listPaymentsUC: listPaymentsUC,
		logger:         logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

// Login opens an admin session
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), adminUsecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, LoginResponse{Success: true, SessionID: result.SessionID})
}

// Logout ends the session named by the bearer token. Unknown tokens succeed.
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.logoutUC.Execute(c.Request.Context(), middleware.SessionIDFromHeader(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c)
}

// ListPayments returns every payment, newest first
// @Summary List payments
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PaymentDTO
// @Failure 401 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /api/admin/payments [get]
func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.listPaymentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, payments)
}
