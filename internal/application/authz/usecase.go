package authz

import (
	"github.com/jhoicas/Backoffice-api/internal/domain"
	domauthz "github.com/jhoicas/Backoffice-api/internal/domain/authz"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// AuthorizeUseCase resuelve la identidad y decide la autorización por request.
// No guarda estado entre llamadas: roles y permisos se releen de la DB en cada
// request para reflejar el último grant comprometido.
type AuthorizeUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewAuthorizeUseCase construye el caso de uso.
func NewAuthorizeUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *AuthorizeUseCase {
	return &AuthorizeUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// CurrentUser carga el usuario del token junto con su scope de tiendas.
func (uc *AuthorizeUseCase) CurrentUser(userID string) (*entity.User, domain.StoreScope, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, domain.StoreScope{}, err
	}
	if user == nil {
		return nil, domain.StoreScope{}, domain.ErrUnauthorized
	}
	scope := domain.StoreScope{CrossStore: user.CrossStoreAllowed}
	if !user.CrossStoreAllowed {
		storeIDs, err := uc.userRepo.ListStoreIDs(userID)
		if err != nil {
			return nil, domain.StoreScope{}, err
		}
		scope.StoreIDs = storeIDs
	}
	return user, scope, nil
}

// Authorize carga los roles (con permisos) del usuario y aplica la decisión
// de tres niveles sobre el descriptor de ruta.
func (uc *AuthorizeUseCase) Authorize(userID string, route domauthz.Route) error {
	roles, err := uc.roleRepo.ListByUser(userID)
	if err != nil {
		return err
	}
	return domauthz.Authorize(roles, route)
}
