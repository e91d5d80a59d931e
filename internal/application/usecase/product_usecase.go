package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos (scoped por tienda).
type ProductUseCase struct {
	repo      repository.ProductRepository
	storeRepo repository.StoreRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, storeRepo repository.StoreRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, storeRepo: storeRepo}
}

// Create crea un producto en una tienda. El usuario debe tener acceso a la tienda.
func (uc *ProductUseCase) Create(scope domain.StoreScope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.StoreID == "" || in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(in.StoreID) {
		return nil, domain.ErrForbidden
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id dentro del scope.
func (uc *ProductUseCase) GetByID(id string, scope domain.StoreScope) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos visibles para el scope, paginados.
func (uc *ProductUseCase) List(scope domain.StoreScope, limit, offset int) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByStore lista productos de una tienda, paginados y scoped.
func (uc *ProductUseCase) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListByStore(scope, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update modifica un producto dentro del scope.
func (uc *ProductUseCase) Update(id string, scope domain.StoreScope, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto dentro del scope.
func (uc *ProductUseCase) Delete(id string, scope domain.StoreScope) error {
	product, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		StoreID:   p.StoreID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}
