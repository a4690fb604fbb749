package handlers

import (
	"net/http"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/middleware"
	"swiftconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("/:paymentId", h.GetPayment)
		payments.PATCH("/:paymentId/pay", h.RecordPayment)
		// Устаревший маршрут: закрывает платеж на полную сумму остатка
		payments.PATCH("/:paymentId/mark-paid", h.MarkPaid)
	}
}

// GetPayment godoc
// @Summary Платеж по ID
// @Tags payments
// @Produce json
// @Param paymentId path string true "ID платежа"
// @Success 200 {object} models.Payment
// @Failure 404 {object} apperrors.ErrorResponse "Платеж не найден"
// @Security BearerAuth
// @Router /payments/{paymentId} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Param("paymentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// RecordPayment godoc
// @Summary Провести оплату
// @Description Принимает полную или частичную сумму, пересчитывает остаток и статус
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentId path string true "ID платежа"
// @Param payment body dto.RecordPaymentRequest true "Сумма оплаты"
// @Success 200 {object} models.Payment
// @Failure 400 {object} apperrors.ErrorResponse "Платеж уже закрыт или сумма некорректна"
// @Failure 404 {object} apperrors.ErrorResponse "Платеж не найден"
// @Security BearerAuth
// @Router /payments/{paymentId}/pay [patch]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	staffID, ok := h.GetAndAuthorizeStaffID(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Param("paymentId"), req.Amount)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Денежный след: кто принял платеж
	logger.CtxInfo(c.Request.Context(), "payment recorded",
		"payment_id", payment.ID,
		"amount", req.Amount,
		"staff_id", staffID,
	)

	c.JSON(http.StatusOK, payment)
}

// MarkPaid godoc
// @Summary Закрыть платеж полностью
// @Description Deprecated: используйте /payments/{paymentId}/pay с точной суммой
// @Tags payments
// @Produce json
// @Param paymentId path string true "ID платежа"
// @Success 200 {object} models.Payment
// @Failure 400 {object} apperrors.ErrorResponse "Платеж уже закрыт"
// @Failure 404 {object} apperrors.ErrorResponse "Платеж не найден"
// @Security BearerAuth
// @Deprecated
// @Router /payments/{paymentId}/mark-paid [patch]
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	staffID, ok := h.GetAndAuthorizeStaffID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.MarkPaid(c.Param("paymentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "payment marked paid",
		"payment_id", payment.ID,
		"staff_id", staffID,
	)

	c.JSON(http.StatusOK, payment)
}
