package repository

import (
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste la orden con todas sus líneas.
	Create(order *entity.Order) error
	// GetByID devuelve la orden con líneas cargadas.
	GetByID(id string, scope domain.StoreScope) (*entity.Order, error)
	List(scope domain.StoreScope, limit, offset int) ([]*entity.Order, error)
	ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Order, error)
}
