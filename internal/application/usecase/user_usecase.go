package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/hashing"
)

// UserUseCase casos de uso para usuarios y sus membresías de roles/tiendas.
type UserUseCase struct {
	repo      repository.UserRepository
	roleRepo  repository.RoleRepository
	storeRepo repository.StoreRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository, storeRepo repository.StoreRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo, storeRepo: storeRepo}
}

// Create registra un usuario: hashea el password, valida los ids de roles y
// tiendas y crea las membresías iniciales.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	for _, roleID := range in.UserRoles {
		role, err := uc.roleRepo.GetByID(roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
	}
	for _, storeID := range in.UserStores {
		store, err := uc.storeRepo.GetByID(storeID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
	}
	hash, err := hashing.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      hash,
		CrossStoreAllowed: in.CrossStoreAllowed,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	for _, roleID := range in.UserRoles {
		if err := uc.repo.AddRole(user.ID, roleID); err != nil {
			return nil, err
		}
	}
	for _, storeID := range in.UserStores {
		if err := uc.repo.AddStore(user.ID, storeID); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(user.ID)
}

// GetByID obtiene un usuario con sus roles y tiendas.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toUserResponse(user)
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toUserResponses(list)
}

// ListByStore lista usuarios con membresía en una tienda.
func (uc *UserUseCase) ListByStore(storeID string, limit, offset int) ([]*dto.UserResponse, error) {
	list, err := uc.repo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toUserResponses(list)
}

// Update modifica datos básicos del usuario; si llega password se re-hashea.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := hashing.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.CrossStoreAllowed != nil {
		user.CrossStoreAllowed = *in.CrossStoreAllowed
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// PatchStores reemplaza las membresías de tienda por diff: agrega las nuevas
// y elimina las que ya no están en la lista.
func (uc *UserUseCase) PatchStores(id string, in dto.PatchUserStoresRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	for _, storeID := range in.UserStores {
		store, err := uc.storeRepo.GetByID(storeID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
	}
	current, err := uc.repo.ListStoreIDs(id)
	if err != nil {
		return nil, err
	}
	toAdd, toRemove := diffIDs(current, in.UserStores)
	for _, storeID := range toAdd {
		if err := uc.repo.AddStore(id, storeID); err != nil {
			return nil, err
		}
	}
	for _, storeID := range toRemove {
		if err := uc.repo.RemoveStore(id, storeID); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(id)
}

// PatchRoles reemplaza las membresías de rol por diff.
func (uc *UserUseCase) PatchRoles(id string, in dto.PatchUserRolesRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	for _, roleID := range in.UserRoles {
		role, err := uc.roleRepo.GetByID(roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
	}
	current, err := uc.repo.ListRoleIDs(id)
	if err != nil {
		return nil, err
	}
	toAdd, toRemove := diffIDs(current, in.UserRoles)
	for _, roleID := range toAdd {
		if err := uc.repo.AddRole(id, roleID); err != nil {
			return nil, err
		}
	}
	for _, roleID := range toRemove {
		if err := uc.repo.RemoveRole(id, roleID); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(id)
}

// Delete elimina el usuario con sus membresías de roles y tiendas.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// diffIDs calcula qué ids agregar (en deseados y no en actuales) y cuáles
// eliminar (en actuales y no en deseados).
func diffIDs(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

func (uc *UserUseCase) toUserResponse(user *entity.User) (*dto.UserResponse, error) {
	roles, err := uc.roleRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	storeIDs, err := uc.repo.ListStoreIDs(user.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		CrossStoreAllowed: user.CrossStoreAllowed,
		UserRoles:         make([]dto.RoleResponse, 0, len(roles)),
		UserStores:        make([]dto.StoreResponse, 0, len(storeIDs)),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
	for i := range roles {
		resp.UserRoles = append(resp.UserRoles, *toRoleResponse(&roles[i]))
	}
	for _, storeID := range storeIDs {
		store, err := uc.storeRepo.GetByID(storeID)
		if err != nil {
			return nil, err
		}
		if store != nil {
			resp.UserStores = append(resp.UserStores, *toStoreResponse(store))
		}
	}
	return resp, nil
}

func (uc *UserUseCase) toUserResponses(list []*entity.User) ([]*dto.UserResponse, error) {
	out := make([]*dto.UserResponse, 0, len(list))
	for _, user := range list {
		resp, err := uc.toUserResponse(user)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
