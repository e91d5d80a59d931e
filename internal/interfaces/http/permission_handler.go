package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// PermissionHandler maneja las peticiones HTTP para Permission (protegido).
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear permiso
// @Tags         permissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePermissionRequest  true  "Datos del permiso"
// @Success      201   {object}  dto.PermissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/permissions [post]
func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return permissionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener permiso por ID
// @Tags         permissions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.PermissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permissions/{id} [get]
func (h *PermissionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return permissionError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar permisos
// @Tags         permissions
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"  default(1)
// @Param        page_size  query  int  false  "Tamaño"  default(20)
// @Success      200  {array}  dto.PermissionResponse
// @Router       /api/permissions [get]
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.PageSize, page.Offset())
	if err != nil {
		return permissionError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar permiso
// @Tags         permissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del permiso"
// @Param        body  body  dto.UpdatePermissionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PermissionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/permissions/{id} [put]
func (h *PermissionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return permissionError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar permiso
// @Tags         permissions
// @Security     Bearer
// @Param        id  path  string  true  "ID del permiso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permissions/{id} [delete]
func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return permissionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// permissionError mapea errores de dominio a respuestas HTTP.
func permissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "permiso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un permiso con ese nombre"})
	default:
		return internalError(c, err)
	}
}
