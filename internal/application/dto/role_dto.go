package dto

import "time"

// CreateRoleRequest alta de rol con sus permisos iniciales (ids).
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	StoreID     string   `json:"store_id"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest modificación de rol. Permissions reemplaza el conjunto
// completo de grants (no es incremental).
type UpdateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// RoleResponse representación de rol con permisos otorgados.
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	StoreID     string               `json:"store_id,omitempty"`
	Permissions []PermissionResponse `json:"role_permissions"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
