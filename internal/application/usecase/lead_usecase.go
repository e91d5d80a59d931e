package usecase

import (
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// LeadUseCase consultas de leads (backorders). Los leads solo los crea el
// motor de órdenes; aquí únicamente se leen.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// GetByID obtiene un lead por id dentro del scope.
func (uc *LeadUseCase) GetByID(id string, scope domain.StoreScope) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(lead), nil
}

// List lista leads visibles para el scope, paginados.
func (uc *LeadUseCase) List(scope domain.StoreScope, limit, offset int) ([]*dto.LeadResponse, error) {
	list, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(list), nil
}

// ListByStore lista leads de una tienda, paginados y scoped.
func (uc *LeadUseCase) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*dto.LeadResponse, error) {
	list, err := uc.repo.ListByStore(scope, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(list), nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:              l.ID,
		StoreID:         l.StoreID,
		CustomerID:      l.CustomerID,
		ProductID:       l.ProductID,
		OrderID:         l.OrderID,
		ProductQuantity: l.Quantity,
		CreatedAt:       l.CreatedAt,
	}
}

func toLeadResponses(list []*entity.Lead) []*dto.LeadResponse {
	out := make([]*dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLeadResponse(l))
	}
	return out
}
