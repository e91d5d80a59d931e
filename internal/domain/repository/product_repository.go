package repository

import (
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string, scope domain.StoreScope) (*entity.Product, error)
	// GetForUpdate obtiene el producto de la tienda bloqueando la fila
	// (SELECT FOR UPDATE); solo tiene sentido dentro de una transacción.
	GetForUpdate(id, storeID string) (*entity.Product, error)
	List(scope domain.StoreScope, limit, offset int) ([]*entity.Product, error)
	ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe el nuevo contador de stock (usado por el motor de órdenes).
	UpdateStock(id string, stock int64) error
	Delete(id string) error
}
