package dto

import "time"

// CreateStoreRequest alta de tienda.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UpdateStoreRequest modificación de tienda.
type UpdateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// StoreResponse representación de tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
