package repository

import "github.com/jhoicas/Backoffice-api/internal/domain/entity"

// PermissionRepository define el puerto de persistencia para Permission.
type PermissionRepository interface {
	Create(permission *entity.Permission) error
	GetByID(id string) (*entity.Permission, error)
	List(limit, offset int) ([]*entity.Permission, error)
	Update(permission *entity.Permission) error
	Delete(id string) error
}
