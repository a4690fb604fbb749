package handlers

import (
	"net/http"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/middleware"
	"swiftconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	*BaseHandler
	customerService services.CustomerService
}

func NewCustomerHandler(base *BaseHandler, customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     base,
		customerService: customerService,
	}
}

func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:customerId", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.DELETE("/:customerId", h.DeleteCustomer)
	}
}

// ListCustomers godoc
// @Summary Список клиентов
// @Description Возвращает клиентов с подписками, платежами и производным статусом. Параметр q фильтрует по имени, email и телефону.
// @Tags customers
// @Produce json
// @Param q query string false "Поисковая строка"
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer godoc
// @Summary Карточка клиента
// @Tags customers
// @Produce json
// @Param customerId path string true "ID клиента"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} apperrors.ErrorResponse "Клиент не найден"
// @Security BearerAuth
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Param("customerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary Создать клиента
// @Description Первый шаг мастера подписки: сохраняет анкету клиента
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Анкета клиента"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// DeleteCustomer godoc
// @Summary Удалить клиента
// @Description Удаляет клиента вместе с подписками и историей платежей
// @Tags customers
// @Param customerId path string true "ID клиента"
// @Success 204 "No Content"
// @Failure 404 {object} apperrors.ErrorResponse "Клиент не найден"
// @Security BearerAuth
// @Router /customers/{customerId} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Param("customerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
