package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto de una tienda. Stock es el contador que el motor de
// órdenes decrementa; la lectura-modificación-escritura se serializa con
// bloqueo de fila en la capa de persistencia.
type Product struct {
	ID        string
	StoreID   string
	Name      string
	Price     decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
