package entity

import "time"

// User representa un usuario del sistema. El email es único global;
// CrossStoreAllowed exime al usuario del filtrado por tienda.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	CrossStoreAllowed bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserRole membresía usuario→rol (la existencia implica la asignación).
type UserRole struct {
	ID     string
	UserID string
	RoleID string
}

// UserStore membresía usuario→tienda.
type UserStore struct {
	ID      string
	UserID  string
	StoreID string
}
