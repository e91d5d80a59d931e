package entity

import "time"

// Role rol nombrado, opcionalmente asociado a una tienda (StoreID vacío = global).
// Permissions se carga con los permisos otorgados cuando el caso de uso lo requiere.
type Role struct {
	ID          string
	Name        string
	StoreID     string // vacío = rol global
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoleGrant otorgamiento rol→permiso (la existencia implica el grant).
type RoleGrant struct {
	ID           string
	RoleID       string
	PermissionID string
}
