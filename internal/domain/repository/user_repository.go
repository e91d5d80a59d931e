package repository

import "github.com/jhoicas/Backoffice-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	// Delete elimina el usuario junto con sus membresías de roles y tiendas.
	Delete(id string) error

	// Membresías usuario→rol.
	AddRole(userID, roleID string) error
	RemoveRole(userID, roleID string) error
	ListRoleIDs(userID string) ([]string, error)

	// Membresías usuario→tienda.
	AddStore(userID, storeID string) error
	RemoveStore(userID, storeID string) error
	ListStoreIDs(userID string) ([]string, error)
}
