package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// PermissionUseCase casos de uso para permisos. Los permisos son globales
// (sin tienda) y su nombre es la identidad usada por la autorización.
type PermissionUseCase struct {
	repo repository.PermissionRepository
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(repo repository.PermissionRepository) *PermissionUseCase {
	return &PermissionUseCase{repo: repo}
}

// Create crea un permiso (nombre único global, case-sensitive).
func (uc *PermissionUseCase) Create(in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	permission := &entity.Permission{
		ID:          uuid.New().String(),
		Name:        in.Name,
		State:       in.State,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(permission); err != nil {
		return nil, err
	}
	return toPermissionResponse(permission), nil
}

// GetByID obtiene un permiso por id.
func (uc *PermissionUseCase) GetByID(id string) (*dto.PermissionResponse, error) {
	permission, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, domain.ErrNotFound
	}
	return toPermissionResponse(permission), nil
}

// List lista permisos paginados.
func (uc *PermissionUseCase) List(limit, offset int) ([]*dto.PermissionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PermissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPermissionResponse(p))
	}
	return out, nil
}

// Update modifica un permiso. Cambiar State a false desactiva el permiso en
// todos los roles que lo tengan otorgado, con efecto inmediato.
func (uc *PermissionUseCase) Update(id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	permission, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		permission.Name = in.Name
	}
	if in.State != nil {
		permission.State = *in.State
	}
	if in.Description != "" {
		permission.Description = in.Description
	}
	permission.UpdatedAt = time.Now()
	if err := uc.repo.Update(permission); err != nil {
		return nil, err
	}
	return toPermissionResponse(permission), nil
}

// Delete elimina un permiso por id.
func (uc *PermissionUseCase) Delete(id string) error {
	permission, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if permission == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPermissionResponse(p *entity.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
