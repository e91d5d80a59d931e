package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// LeadHandler maneja las peticiones HTTP para Lead (protegido, solo lectura).
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener lead por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetScope(c))
	if err != nil {
		return leadError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar leads visibles para el usuario
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"  default(1)
// @Param        page_size  query  int  false  "Tamaño"  default(20)
// @Success      200  {array}  dto.LeadResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetScope(c), page.PageSize, page.Offset())
	if err != nil {
		return leadError(c, err)
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Listar leads de una tienda
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        store_id   path   string  true   "ID de la tienda"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(20)
// @Success      200  {array}  dto.LeadResponse
// @Router       /api/leads/store/{store_id} [get]
func (h *LeadHandler) ListByStore(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByStore(GetScope(c), c.Params("store_id"), page.PageSize, page.Offset())
	if err != nil {
		return leadError(c, err)
	}
	return c.JSON(out)
}

// leadError mapea errores de dominio a respuestas HTTP.
func leadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lead no encontrado"})
	}
	return internalError(c, err)
}
