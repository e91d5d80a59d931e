package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauthz "github.com/jhoicas/Backoffice-api/internal/application/authz"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	httpapi "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

const (
	testSecret = "secreto-para-tests-http"
	testIssuer = "backoffice-api-test"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de repositorio para resolver identidad y roles
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[string]*entity.User
	stores map[string][]string // userID → storeIDs
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (r *fakeUserRepo) ListByStore(string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(*entity.User) error        { return nil }
func (r *fakeUserRepo) Delete(string) error              { return nil }
func (r *fakeUserRepo) AddRole(string, string) error     { return nil }
func (r *fakeUserRepo) RemoveRole(string, string) error  { return nil }
func (r *fakeUserRepo) ListRoleIDs(string) ([]string, error) {
	return nil, nil
}
func (r *fakeUserRepo) AddStore(string, string) error    { return nil }
func (r *fakeUserRepo) RemoveStore(string, string) error { return nil }

func (r *fakeUserRepo) ListStoreIDs(userID string) ([]string, error) {
	return r.stores[userID], nil
}

type fakeRoleRepo struct {
	byUser map[string][]entity.Role
}

func (r *fakeRoleRepo) Create(*entity.Role) error          { return nil }
func (r *fakeRoleRepo) GetByID(string) (*entity.Role, error) {
	return nil, nil
}
func (r *fakeRoleRepo) List(int, int) ([]*entity.Role, error) { return nil, nil }
func (r *fakeRoleRepo) ListByStore(string, int, int) ([]*entity.Role, error) {
	return nil, nil
}

func (r *fakeRoleRepo) ListByUser(userID string) ([]entity.Role, error) {
	return r.byUser[userID], nil
}

func (r *fakeRoleRepo) Update(*entity.Role) error                { return nil }
func (r *fakeRoleRepo) ReplaceGrants(string, []string) error     { return nil }
func (r *fakeRoleRepo) Delete(string) error                      { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta una app Fiber con el pipeline real de auth:
// AuthMiddleware → RequirePermission("Leads", "get_leads") → handler trivial.
func buildTestApp(t *testing.T, users *fakeUserRepo, roles *fakeRoleRepo) *fiber.App {
	t.Helper()
	authzUC := appauthz.NewAuthorizeUseCase(users, roles)

	app := fiber.New()
	protected := app.Group("/api", httpapi.AuthMiddleware(testSecret, authzUC))
	protected.Get("/leads",
		httpapi.RequirePermission(authzUC, nil, "Leads", "get_leads"),
		func(c *fiber.Ctx) error {
			scope := httpapi.GetScope(c)
			return c.JSON(fiber.Map{
				"user_id":     httpapi.GetUserID(c),
				"cross_store": scope.CrossStore,
				"store_ids":   scope.StoreIDs,
			})
		})
	return app
}

// doRequest ejecuta un GET /api/leads con el header Authorization dado y
// devuelve el status y el body decodificado como ErrorResponse (si aplica).
func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var errResp dto.ErrorResponse
	_ = json.Unmarshal(body, &errResp)
	return resp.StatusCode, errResp
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, testIssuer, 60)
	require.NoError(t, err)
	return token
}

func activePerm(name string) entity.Permission {
	return entity.Permission{ID: "perm-" + name, Name: name, State: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, &fakeRoleRepo{})

	status, errResp := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", errResp.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, &fakeRoleRepo{})

	status, errResp := doRequest(t, app, "Basic abc123")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{}, &fakeRoleRepo{})

	status, errResp := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

// Token válido pero el usuario ya no existe: la identidad se revalida en DB.
func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(t, &fakeUserRepo{users: map[string]*entity.User{}}, &fakeRoleRepo{})

	status, errResp := doRequest(t, app, "Bearer "+tokenFor(t, "user-fantasma"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errResp.Code)
}

// El scope del usuario viaja en Locals y refleja sus membresías actuales.
func TestAuthMiddleware_PropagaScope(t *testing.T) {
	users := &fakeUserRepo{
		users:  map[string]*entity.User{"user-1": {ID: "user-1", Name: "Ana"}},
		stores: map[string][]string{"user-1": {"store-1", "store-2"}},
	}
	roles := &fakeRoleRepo{byUser: map[string][]entity.Role{
		"user-1": {{ID: "r1", Name: "viewer", Permissions: []entity.Permission{activePerm("get_leads")}}},
	}}
	app := buildTestApp(t, users, roles)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "user-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		UserID     string   `json:"user_id"`
		CrossStore bool     `json:"cross_store"`
		StoreIDs   []string `json:"store_ids"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "user-1", out.UserID)
	assert.False(t, out.CrossStore)
	assert.ElementsMatch(t, []string{"store-1", "store-2"}, out.StoreIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Sin roles asignados la denegación es inmediata y distinguible.
func TestRequirePermission_SinRoles(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"user-1": {ID: "user-1"}}}
	app := buildTestApp(t, users, &fakeRoleRepo{byUser: map[string][]entity.Role{}})

	status, errResp := doRequest(t, app, "Bearer "+tokenFor(t, "user-1"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "NO_ROLES", errResp.Code)
}

// Con roles pero sin ningún candidato activo: NO_PERMISSION.
func TestRequirePermission_SinPermiso(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"user-1": {ID: "user-1"}}}
	roles := &fakeRoleRepo{byUser: map[string][]entity.Role{
		"user-1": {{ID: "r1", Name: "otro", Permissions: []entity.Permission{activePerm("Products")}}},
	}}
	app := buildTestApp(t, users, roles)

	status, errResp := doRequest(t, app, "Bearer "+tokenFor(t, "user-1"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "NO_PERMISSION", errResp.Code)
}

// Un permiso otorgado pero desactivado no habilita la ruta.
func TestRequirePermission_PermisoInactivo(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"user-1": {ID: "user-1"}}}
	roles := &fakeRoleRepo{byUser: map[string][]entity.Role{
		"user-1": {{ID: "r1", Name: "viewer", Permissions: []entity.Permission{
			{ID: "p1", Name: "get_leads", State: false},
		}}},
	}}
	app := buildTestApp(t, users, roles)

	status, errResp := doRequest(t, app, "Bearer "+tokenFor(t, "user-1"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "NO_PERMISSION", errResp.Code)
}

// El permiso de grupo habilita todas las rutas del grupo.
func TestRequirePermission_PermisoDeGrupo(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"user-1": {ID: "user-1"}}}
	roles := &fakeRoleRepo{byUser: map[string][]entity.Role{
		"user-1": {{ID: "r1", Name: "admin", Permissions: []entity.Permission{activePerm("Leads")}}},
	}}
	app := buildTestApp(t, users, roles)

	status, _ := doRequest(t, app, "Bearer "+tokenFor(t, "user-1"))
	assert.Equal(t, fiber.StatusOK, status)
}

// El candidato grupo+método habilita solo ese verbo sobre el grupo.
func TestRequirePermission_PermisoGrupoMetodo(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"user-1": {ID: "user-1"}}}
	roles := &fakeRoleRepo{byUser: map[string][]entity.Role{
		"user-1": {{ID: "r1", Name: "viewer", Permissions: []entity.Permission{activePerm("leads_get_method")}}},
	}}
	app := buildTestApp(t, users, roles)

	status, _ := doRequest(t, app, "Bearer "+tokenFor(t, "user-1"))
	assert.Equal(t, fiber.StatusOK, status)
}
