package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/authz"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// roleWith construye un rol con permisos activos por nombre.
func roleWith(name string, perms ...string) entity.Role {
	role := entity.Role{ID: "role-" + name, Name: name}
	for _, p := range perms {
		role.Permissions = append(role.Permissions, entity.Permission{
			ID: "perm-" + p, Name: p, State: true,
		})
	}
	return role
}

var ordersRoute = authz.Route{Group: "Orders", Method: "POST", Handler: "create_order"}

// Sin roles: denegación inmediata, sin importar qué permisos existan.
func TestAuthorize_SinRoles_Deniega(t *testing.T) {
	err := authz.Authorize(nil, ordersRoute)
	assert.ErrorIs(t, err, domain.ErrNoRolesAssigned)

	err = authz.Authorize([]entity.Role{}, ordersRoute)
	assert.ErrorIs(t, err, domain.ErrNoRolesAssigned)
}

// Nivel 1: el nombre del grupo tal cual se declaró habilita la ruta.
func TestAuthorize_PermisoDeGrupo(t *testing.T) {
	roles := []entity.Role{roleWith("admin", "Orders")}
	assert.NoError(t, authz.Authorize(roles, ordersRoute))

	// El match es case-sensitive: "orders" no habilita el grupo "Orders".
	roles = []entity.Role{roleWith("admin", "orders")}
	assert.ErrorIs(t, authz.Authorize(roles, ordersRoute), domain.ErrNoPermission)
}

// Nivel 2: la combinación grupo+método en minúsculas habilita solo ese verbo.
func TestAuthorize_PermisoGrupoMetodo(t *testing.T) {
	roles := []entity.Role{roleWith("vendedor", "orders_post_method")}
	assert.NoError(t, authz.Authorize(roles, ordersRoute))

	getRoute := authz.Route{Group: "Orders", Method: "GET", Handler: "get_orders"}
	assert.ErrorIs(t, authz.Authorize(roles, getRoute), domain.ErrNoPermission)
}

// Nivel 3: el nombre del handler habilita exactamente esa operación.
func TestAuthorize_PermisoDeHandler(t *testing.T) {
	roles := []entity.Role{roleWith("vendedor", "create_order")}
	assert.NoError(t, authz.Authorize(roles, ordersRoute))

	otherRoute := authz.Route{Group: "Orders", Method: "POST", Handler: "delete_order"}
	assert.ErrorIs(t, authz.Authorize(roles, otherRoute), domain.ErrNoPermission)
}

// Un permiso otorgado pero desactivado (State=false) nunca habilita.
func TestAuthorize_PermisoInactivoNoHabilita(t *testing.T) {
	role := entity.Role{ID: "r1", Name: "admin", Permissions: []entity.Permission{
		{ID: "p1", Name: "Orders", State: false},
	}}
	err := authz.Authorize([]entity.Role{role}, ordersRoute)
	assert.ErrorIs(t, err, domain.ErrNoPermission)
}

// Basta con que UNO de los candidatos exista activo (OR lógico entre niveles).
func TestAuthorize_BastaUnCandidato(t *testing.T) {
	roles := []entity.Role{
		roleWith("sin-acceso", "Products"),
		roleWith("con-acceso", "orders_post_method"),
	}
	assert.NoError(t, authz.Authorize(roles, ordersRoute))
}

// Ruta sin metadata: ningún candidato posible, siempre denegada (con roles).
func TestAuthorize_RutaSinMetadata_Deniega(t *testing.T) {
	roles := []entity.Role{roleWith("admin", "Orders", "create_order")}
	err := authz.Authorize(roles, authz.Route{Method: "POST"})
	assert.ErrorIs(t, err, domain.ErrNoPermission)
}

// Resolve deduplica por nombre: un permiso alcanzable por dos roles cuenta una vez.
func TestResolve_DeduplicaEntreRoles(t *testing.T) {
	roles := []entity.Role{
		roleWith("a", "Orders", "Products"),
		roleWith("b", "Orders", "Customers"),
	}
	perms := authz.Resolve(roles)
	names := make(map[string]int)
	for _, p := range perms {
		names[p.Name]++
	}
	assert.Len(t, perms, 3)
	assert.Equal(t, 1, names["Orders"])
	assert.Equal(t, 1, names["Products"])
	assert.Equal(t, 1, names["Customers"])
}

// La decisión no depende del orden de los roles.
func TestAuthorize_InvarianteAlOrden(t *testing.T) {
	a := roleWith("a", "Products")
	b := roleWith("b", "create_order")
	assert.NoError(t, authz.Authorize([]entity.Role{a, b}, ordersRoute))
	assert.NoError(t, authz.Authorize([]entity.Role{b, a}, ordersRoute))
}

// Candidates construye los tres niveles en orden de grueso a fino.
func TestCandidates_TresNiveles(t *testing.T) {
	names := authz.Candidates(ordersRoute)
	require.Equal(t, []string{"Orders", "orders_post_method", "create_order"}, names)

	// Sin grupo no hay combinación grupo+método, solo el handler.
	names = authz.Candidates(authz.Route{Method: "GET", Handler: "get_leads"})
	require.Equal(t, []string{"get_leads"}, names)
}
