package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// RoleHandler maneja las peticiones HTTP para Role (protegido).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol con permisos iniciales
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Datos del rol"
// @Success      201   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return roleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol por ID con sus permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return roleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"  default(1)
// @Param        page_size  query  int  false  "Tamaño"  default(20)
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.PageSize, page.Offset())
	if err != nil {
		return roleError(c, err)
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Listar roles de una tienda
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        store_id   path   string  true   "ID de la tienda"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(20)
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles/store/{store_id} [get]
func (h *RoleHandler) ListByStore(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByStore(c.Params("store_id"), page.PageSize, page.Offset())
	if err != nil {
		return roleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rol (reemplaza el conjunto de permisos si se envía)
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.UpdateRoleRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RoleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return roleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Security     Bearer
// @Param        id  path  string  true  "ID del rol"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return roleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// roleError mapea errores de dominio a respuestas HTTP.
func roleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol o permiso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un rol con ese nombre"})
	default:
		return internalError(c, err)
	}
}
