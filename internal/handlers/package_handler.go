package handlers

import (
	"net/http"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/middleware"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	*BaseHandler
	packageService services.PackageService
}

func NewPackageHandler(base *BaseHandler, packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

func (h *PackageHandler) RegisterRoutes(r *gin.RouterGroup) {
	packages := r.Group("/packages")
	packages.Use(middleware.AuthMiddleware())
	{
		packages.GET("", h.ListPackages)
		packages.GET("/:packageId", h.GetPackage)
	}

	// Менять каталог пакетов может только администратор
	admin := packages.Group("")
	admin.Use(middleware.RequireRoles(models.StaffRoleAdmin))
	{
		admin.POST("", h.CreatePackage)
		admin.PATCH("/:packageId", h.UpdatePackage)
		admin.DELETE("/:packageId", h.DeletePackage)
	}
}

// ListPackages godoc
// @Summary Список интернет-пакетов
// @Tags packages
// @Produce json
// @Success 200 {array} models.Package
// @Security BearerAuth
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packageService.ListPackages()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage godoc
// @Summary Пакет по ID
// @Tags packages
// @Produce json
// @Param packageId path string true "ID пакета"
// @Success 200 {object} models.Package
// @Failure 404 {object} apperrors.ErrorResponse "Пакет не найден"
// @Security BearerAuth
// @Router /packages/{packageId} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetPackage(c.Param("packageId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// CreatePackage godoc
// @Summary Создать пакет
// @Tags packages
// @Accept json
// @Produce json
// @Param package body dto.CreatePackageRequest true "Данные пакета"
// @Success 201 {object} models.Package
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 403 {object} apperrors.ErrorResponse "Требуется роль администратора"
// @Security BearerAuth
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pkg, err := h.packageService.CreatePackage(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage godoc
// @Summary Обновить пакет
// @Description Частичное обновление: меняются только переданные поля
// @Tags packages
// @Accept json
// @Produce json
// @Param packageId path string true "ID пакета"
// @Param package body dto.UpdatePackageRequest true "Изменяемые поля"
// @Success 200 {object} models.Package
// @Failure 403 {object} apperrors.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} apperrors.ErrorResponse "Пакет не найден"
// @Security BearerAuth
// @Router /packages/{packageId} [patch]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Param("packageId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage godoc
// @Summary Удалить пакет
// @Description Пакет с активными подписками удалить нельзя
// @Tags packages
// @Param packageId path string true "ID пакета"
// @Success 204 "No Content"
// @Failure 400 {object} apperrors.ErrorResponse "Пакет используется"
// @Failure 403 {object} apperrors.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} apperrors.ErrorResponse "Пакет не найден"
// @Security BearerAuth
// @Router /packages/{packageId} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.DeletePackage(c.Param("packageId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
