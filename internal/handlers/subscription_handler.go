package handlers

import (
	"net/http"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/middleware"
	"swiftconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.GET("/:subscriptionId", h.GetSubscription)
		subscriptions.POST("", h.CreateSubscription)
		subscriptions.PATCH("/:subscriptionId", h.UpdateSubscription)
		subscriptions.DELETE("/:subscriptionId", h.DeleteSubscription)
	}
}

// GetSubscription godoc
// @Summary Подписка по ID
// @Tags subscriptions
// @Produce json
// @Param subscriptionId path string true "ID подписки"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} apperrors.ErrorResponse "Подписка не найдена"
// @Security BearerAuth
// @Router /subscriptions/{subscriptionId} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sub, err := h.subscriptionService.GetSubscription(c.Param("subscriptionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// CreateSubscription godoc
// @Summary Оформить подписку
// @Description Фиксирует цену по текущему прайсу пакета и открывает первый pending платеж
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Параметры подписки"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} apperrors.ErrorResponse "Клиент или пакет не найден"
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// UpdateSubscription godoc
// @Summary Обновить подписку
// @Description Частичное обновление; смена пакета или цикла перефиксирует цену
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscriptionId path string true "ID подписки"
// @Param subscription body dto.UpdateSubscriptionRequest true "Изменяемые поля"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} apperrors.ErrorResponse "Подписка не найдена"
// @Security BearerAuth
// @Router /subscriptions/{subscriptionId} [patch]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	var req dto.UpdateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(c.Param("subscriptionId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// DeleteSubscription godoc
// @Summary Удалить подписку
// @Description Удаляет подписку вместе с историей платежей
// @Tags subscriptions
// @Param subscriptionId path string true "ID подписки"
// @Success 204 "No Content"
// @Failure 404 {object} apperrors.ErrorResponse "Подписка не найдена"
// @Security BearerAuth
// @Router /subscriptions/{subscriptionId} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	if err := h.subscriptionService.DeleteSubscription(c.Param("subscriptionId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
