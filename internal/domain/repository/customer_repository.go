package repository

import (
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Las lecturas reciben el StoreScope del usuario: una fila fuera del scope
// se comporta como inexistente, incluso en búsquedas directas por id.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string, scope domain.StoreScope) (*entity.Customer, error)
	List(scope domain.StoreScope, limit, offset int) ([]*entity.Customer, error)
	ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// HasOrders indica si existen órdenes que referencian al cliente
	// (restricción referencial en el borrado).
	HasOrders(customerID string) (bool, error)
}
