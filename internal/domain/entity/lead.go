package entity

import "time"

// Lead registro de backorder: demanda de un producto que excedió el stock al
// crear una orden. Quantity es el faltante no satisfecho; OrderID enlaza la
// orden recién creada que lo originó.
type Lead struct {
	ID         string
	StoreID    string
	CustomerID string
	ProductID  string
	OrderID    string
	Quantity   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
