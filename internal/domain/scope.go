package domain

// StoreScope delimita qué tiendas puede ver/modificar un usuario.
// Un usuario cross-store no se filtra; el resto solo accede a filas cuyo
// store_id está en sus membresías — el filtro se aplica en cada query, no
// solo en escrituras.
type StoreScope struct {
	CrossStore bool
	StoreIDs   []string
}

// Allows indica si el scope permite operar sobre la tienda dada.
func (s StoreScope) Allows(storeID string) bool {
	if s.CrossStore {
		return true
	}
	for _, id := range s.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}
