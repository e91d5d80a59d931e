package entity

import "time"

// Permission permiso nombrado (nombre único global, case-sensitive).
// Un permiso con State=false nunca satisface un chequeo de autorización
// aunque esté otorgado. Los permisos no tienen tienda.
type Permission struct {
	ID          string
	Name        string
	State       bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
