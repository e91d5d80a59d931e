package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// StoreUseCase casos de uso para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda nueva.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por id.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// List lista tiendas paginadas.
func (uc *StoreUseCase) List(limit, offset int) ([]*dto.StoreResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStoreResponse(s))
	}
	return out, nil
}

// Update modifica una tienda existente.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		store.Name = in.Name
	}
	if in.Address != "" {
		store.Address = in.Address
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina una tienda por id.
func (uc *StoreUseCase) Delete(id string) error {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
