package entity

import "time"

// Store representa una tienda: el límite de aislamiento multi-tenant.
// Productos, clientes, órdenes, leads y roles pertenecen a exactamente una tienda.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
