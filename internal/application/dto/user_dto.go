package dto

import "time"

// CreateUserRequest alta de usuario con membresías iniciales (ids de roles y tiendas).
type CreateUserRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	CrossStoreAllowed bool     `json:"cross_store_allowed"`
	UserRoles         []string `json:"user_roles"`
	UserStores        []string `json:"user_stores"`
}

// UpdateUserRequest modificación de datos básicos del usuario.
type UpdateUserRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	CrossStoreAllowed *bool  `json:"cross_store_allowed"`
}

// PatchUserStoresRequest reemplaza las membresías de tienda del usuario;
// el caso de uso calcula el diff (agrega las nuevas, quita las ausentes).
type PatchUserStoresRequest struct {
	UserStores []string `json:"user_stores"`
}

// PatchUserRolesRequest reemplaza las membresías de rol del usuario (diff).
type PatchUserRolesRequest struct {
	UserRoles []string `json:"user_roles"`
}

// UserResponse representación de usuario con sus membresías.
type UserResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	CrossStoreAllowed bool            `json:"cross_store_allowed"`
	UserRoles         []RoleResponse  `json:"user_roles"`
	UserStores        []StoreResponse `json:"user_stores"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
