package dto

import "time"

// CreatePermissionRequest alta de permiso (nombre único global).
type CreatePermissionRequest struct {
	Name        string `json:"name"`
	State       bool   `json:"state"`
	Description string `json:"description"`
}

// UpdatePermissionRequest modificación de permiso. State es puntero para
// distinguir "no enviado" de "false" (desactivar un permiso es una operación
// deliberada).
type UpdatePermissionRequest struct {
	Name        string `json:"name"`
	State       *bool  `json:"state"`
	Description string `json:"description"`
}

// PermissionResponse representación de permiso.
type PermissionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       bool      `json:"state"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
