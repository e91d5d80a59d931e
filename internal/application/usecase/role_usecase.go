package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// RoleUseCase casos de uso para roles y sus grants de permisos.
type RoleUseCase struct {
	repo     repository.RoleRepository
	permRepo repository.PermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, permRepo: permRepo}
}

// Create crea un rol con sus permisos iniciales.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validatePermissionIDs(in.Permissions); err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{
		ID:        uuid.New().String(),
		Name:      in.Name,
		StoreID:   in.StoreID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	if len(in.Permissions) > 0 {
		if err := uc.repo.ReplaceGrants(role.ID, in.Permissions); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(role.ID)
}

// GetByID obtiene un rol por id con sus permisos.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

// List lista roles paginados.
func (uc *RoleUseCase) List(limit, offset int) ([]*dto.RoleResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toRoleResponses(list), nil
}

// ListByStore lista roles de una tienda, paginados.
func (uc *RoleUseCase) ListByStore(storeID string, limit, offset int) ([]*dto.RoleResponse, error) {
	list, err := uc.repo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toRoleResponses(list), nil
}

// Update modifica el rol y reemplaza su conjunto completo de grants
// (borrar-todo-e-insertar, como exige el contrato del repositorio).
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validatePermissionIDs(in.Permissions); err != nil {
		return nil, err
	}
	if in.Name != "" {
		role.Name = in.Name
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	if in.Permissions != nil {
		if err := uc.repo.ReplaceGrants(id, in.Permissions); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(id)
}

// Delete elimina un rol y sus grants.
func (uc *RoleUseCase) Delete(id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validatePermissionIDs verifica que todos los ids de permisos existan.
func (uc *RoleUseCase) validatePermissionIDs(ids []string) error {
	for _, id := range ids {
		permission, err := uc.permRepo.GetByID(id)
		if err != nil {
			return err
		}
		if permission == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	resp := &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		StoreID:     r.StoreID,
		Permissions: make([]dto.PermissionResponse, 0, len(r.Permissions)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, p := range r.Permissions {
		resp.Permissions = append(resp.Permissions, *toPermissionResponse(&p))
	}
	return resp
}

func toRoleResponses(list []*entity.Role) []*dto.RoleResponse {
	out := make([]*dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRoleResponse(r))
	}
	return out
}
