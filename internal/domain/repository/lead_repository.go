package repository

import (
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead (backorders).
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string, scope domain.StoreScope) (*entity.Lead, error)
	List(scope domain.StoreScope, limit, offset int) ([]*entity.Lead, error)
	ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Lead, error)
}
