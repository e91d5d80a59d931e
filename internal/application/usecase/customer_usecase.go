package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes (scoped por tienda).
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	storeRepo repository.StoreRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, storeRepo repository.StoreRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, storeRepo: storeRepo}
}

// Create crea un cliente en una tienda del scope.
func (uc *CustomerUseCase) Create(scope domain.StoreScope, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.StoreID == "" || in.Name == "" {
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
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por id dentro del scope.
func (uc *CustomerUseCase) GetByID(id string, scope domain.StoreScope) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes visibles para el scope, paginados.
func (uc *CustomerUseCase) List(scope domain.StoreScope, limit, offset int) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// ListByStore lista clientes de una tienda, paginados y scoped.
func (uc *CustomerUseCase) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByStore(scope, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Update modifica un cliente dentro del scope.
func (uc *CustomerUseCase) Update(id string, scope domain.StoreScope, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente dentro del scope. Si existen órdenes que lo
// referencian retorna ErrConflict (restricción referencial).
func (uc *CustomerUseCase) Delete(id string, scope domain.StoreScope) error {
	customer, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	hasOrders, err := uc.repo.HasOrders(id)
	if err != nil {
		return err
	}
	if hasOrders {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(list []*entity.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out
}
