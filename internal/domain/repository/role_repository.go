package repository

import "github.com/jhoicas/Backoffice-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role y sus grants.
type RoleRepository interface {
	Create(role *entity.Role) error
	// GetByID devuelve el rol con sus permisos otorgados cargados.
	GetByID(id string) (*entity.Role, error)
	List(limit, offset int) ([]*entity.Role, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Role, error)
	// ListByUser devuelve los roles del usuario con permisos cargados
	// (insumo del resolver de autorización; se relee en cada request).
	ListByUser(userID string) ([]entity.Role, error)
	Update(role *entity.Role) error
	// ReplaceGrants reemplaza el conjunto completo de permisos del rol
	// (borrar-todo-e-insertar, no incremental).
	ReplaceGrants(roleID string, permissionIDs []string) error
	// Delete elimina el rol y sus grants.
	Delete(id string) error
}
