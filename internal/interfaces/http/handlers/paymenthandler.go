package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// maxWebhookBodyBytes caps gateway notification bodies.
const maxWebhookBodyBytes = 1 << 20

type PaymentHandler struct {
	createOrderUC createPaymentOrderUseCase
	webhookUC     handlePaymentWebhookUseCase
	verifyUC      verifyPaymentUseCase
	logger        logger.Interface
}

func NewPaymentHandler(
	createOrderUC createPaymentOrderUseCase,
	webhookUC handlePaymentWebhookUseCase,
	verifyUC verifyPaymentUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createOrderUC: createOrderUC,
		webhookUC:     webhookUC,
		verifyUC:      verifyUC,
		logger:        logger,
	}
}

type CreatePaymentRequest struct {
	PlanID        string `json:"planId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"max=255"`
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email,max=255"`
	CustomerPhone string `json:"customerPhone" binding:"max=32"`
}

// CreatePayment opens a checkout for a plan
// @Summary Create payment order
// @Description Record a pending payment and open a gateway checkout
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Plan and optional customer details"
// @Success 200 {object} dto.CreatePaymentOrderResponse
// @Failure 400 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /api/payments/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create payment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), paymentUsecases.CreatePaymentOrderCommand{
		PlanID:        req.PlanID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// HandleWebhook ingests a gateway notification
// @Summary Payment webhook
// @Description Gateway callback that moves a payment to its reported status
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /api/payment/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	err = h.webhookUC.Execute(c.Request.Context(), paymentUsecases.HandlePaymentWebhookCommand{
		Header: c.Request.Header,
		Body:   body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c)
}

// VerifyPayment returns the stored payment for an order id
// @Summary Verify payment
// @Description Look up a payment by its order id
// @Tags Payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} dto.PaymentDTO
// @Failure 404 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /api/payments/verify/{orderId} [get]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	result, err := h.verifyUC.Execute(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}
