package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// OrderPDFGenerator genera la representación en PDF de una orden.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, store *entity.Store, customer *entity.Customer) ([]byte, error)
}

// PDFUseCase genera el resumen imprimible (PDF) de una orden.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	storeRepo    repository.StoreRepository
	customerRepo repository.CustomerRepository
	generator    OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	customerRepo repository.CustomerRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:    orderRepo,
		storeRepo:    storeRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadOrderPDF carga la orden (scoped), su tienda y su cliente, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe o está fuera del scope.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, scope domain.StoreScope, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID, scope)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	store, err := uc.storeRepo.GetByID(order.StoreID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(order.CustomerID, scope)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, store, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("orden_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
