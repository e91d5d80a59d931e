package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Autorización por permisos: ambos mapean a 401 pero deben distinguirse en logs.
	ErrNoRolesAssigned = errors.New("usuario sin roles asignados")
	ErrNoPermission    = errors.New("usuario sin permiso para este endpoint, método o función")

	// Creación de órdenes: ninguna línea pudo satisfacerse con el stock disponible.
	ErrNoProductsAvailable = errors.New("no hay productos disponibles")
)
