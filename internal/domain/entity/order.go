package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order orden comprometida: pertenece a una tienda y un cliente, y solo se
// construye completa a través del motor de fulfillment (nunca parcial).
// Total es exactamente la suma de price*quantity de sus líneas.
type Order struct {
	ID         string
	StoreID    string
	CustomerID string
	Total      decimal.Decimal
	Lines      []OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderLine línea comprometida de una orden. Price y Name son snapshots del
// producto al momento de la orden, inmunes a ediciones posteriores.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Price     decimal.Decimal
	Quantity  int64
	Name      string
}
