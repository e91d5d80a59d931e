package entity

import "time"

// Customer representa un cliente de una tienda.
type Customer struct {
	ID        string
	StoreID   string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
