package authz

import (
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Route descriptor resuelto de la ruta entrante. Group y Handler se declaran
// estáticamente al registrar la ruta; Method es el verbo HTTP del request.
// Una ruta sin metadata produce los tres candidatos ausentes, con lo que
// ningún usuario (fuera del corto-circuito por falta de roles) puede pasarla.
type Route struct {
	Group   string // ej. "Orders"
	Method  string // GET, POST, PUT, PATCH, DELETE
	Handler string // nombre simbólico de la operación, ej. "create_order"
}

// Resolve aplana el grafo usuario→roles→permisos en el conjunto efectivo de
// permisos, deduplicado por nombre. Un permiso alcanzable por dos roles
// cuenta una sola vez. Función pura del grafo al momento de la llamada:
// no hay cacheo entre requests.
func Resolve(roles []entity.Role) []entity.Permission {
	seen := make(map[string]struct{})
	var permissions []entity.Permission
	for _, role := range roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			permissions = append(permissions, p)
		}
	}
	return permissions
}

// Candidates construye los tres nombres de permiso que pueden habilitar la
// ruta, de grueso a fino: el grupo tal cual se declaró, la combinación
// "{grupo}_{método}_method" en minúsculas, y el nombre del handler.
func Candidates(route Route) []string {
	var names []string
	if route.Group != "" {
		names = append(names, route.Group)
		if route.Method != "" {
			names = append(names, strings.ToLower(route.Group)+"_"+strings.ToLower(route.Method)+"_method")
		}
	}
	if route.Handler != "" {
		names = append(names, route.Handler)
	}
	return names
}

// Authorize decide si el usuario puede ejecutar la ruta. Basta con que uno de
// los tres candidatos exista en el conjunto resuelto con State=true (OR
// lógico). Cero roles corta de inmediato con ErrNoRolesAssigned, antes de
// resolver permisos.
func Authorize(roles []entity.Role, route Route) error {
	if len(roles) == 0 {
		return domain.ErrNoRolesAssigned
	}
	permissions := Resolve(roles)
	for _, name := range Candidates(route) {
		if findByName(permissions, name) != nil {
			return nil
		}
	}
	return domain.ErrNoPermission
}

// findByName busca un permiso activo por nombre exacto (case-sensitive).
// Los permisos inactivos no satisfacen nunca un chequeo aunque estén otorgados.
func findByName(permissions []entity.Permission, name string) *entity.Permission {
	for i := range permissions {
		if permissions[i].Name == name && permissions[i].State {
			return &permissions[i]
		}
	}
	return nil
}
