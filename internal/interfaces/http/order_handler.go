package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/orders"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido, scoped).
type OrderHandler struct {
	createUC *orders.CreateOrderUseCase
	pdfUC    *orders.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(createUC *orders.CreateOrderUseCase, pdfUC *orders.PDFUseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear orden con fulfillment parcial
// @Description  Satisface cada línea hasta donde alcanza el stock; el faltante queda registrado como lead. Si ninguna línea se puede satisfacer, la orden se rechaza completa.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Tienda, cliente (existente o nuevo) y productos"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateOrder(c.Context(), GetScope(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID con líneas y cliente
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.createUC.GetOrder(c.Params("id"), GetScope(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes visibles para el usuario
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"  default(1)
// @Param        page_size  query  int  false  "Tamaño"  default(20)
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.createUC.ListOrders(GetScope(c), page.PageSize, page.Offset())
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Listar órdenes de una tienda
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        store_id   path   string  true   "ID de la tienda"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(20)
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/store/{store_id} [get]
func (h *OrderHandler) ListByStore(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.createUC.ListOrdersByStore(GetScope(c), c.Params("store_id"), page.PageSize, page.Offset())
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el resumen de la orden en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadOrderPDF(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// orderError mapea errores de dominio a respuestas HTTP.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoProductsAvailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_PRODUCTS_AVAILABLE", Message: "ningún producto solicitado tiene stock disponible"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la orden inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden, cliente o producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "tienda fuera del alcance del usuario"})
	default:
		return internalError(c, err)
	}
}
