package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	appauthz "github.com/jhoicas/Backoffice-api/internal/application/authz"
	"github.com/jhoicas/Backoffice-api/internal/application/orders"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AuthzUC      *appauthz.AuthorizeUseCase
	UserUC       *usecase.UserUseCase
	RoleUC       *usecase.RoleUseCase
	PermissionUC *usecase.PermissionUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	CreateOrder  *orders.CreateOrderUseCase
	OrderPDF     *orders.PDFUseCase
	LeadUC       *usecase.LeadUseCase
	Metrics      *metrics.APIMetrics
	JWTSecret    string
}

// Router registra las rutas de la API. Cada ruta protegida declara su grupo y
// el nombre simbólico de su operación: de ahí salen los tres candidatos que
// evalúa el middleware de permisos. Una ruta registrada sin metadata quedaría
// cerrada para todos, por eso el perm() local la hace obligatoria.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthzUC))

	perm := func(group, handler string) fiber.Handler {
		return RequirePermission(deps.AuthzUC, deps.Metrics, group, handler)
	}

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", perm("Users", "create_user"), userHandler.Create)
	users.Get("/", perm("Users", "get_users"), userHandler.List)
	users.Get("/store/:store_id", perm("Users", "get_users_by_store"), userHandler.ListByStore)
	users.Get("/:id", perm("Users", "get_user"), userHandler.GetByID)
	users.Put("/:id", perm("Users", "update_user"), userHandler.Update)
	users.Patch("/:id/stores", perm("Users", "update_user_stores"), userHandler.PatchStores)
	users.Patch("/:id/roles", perm("Users", "update_user_roles"), userHandler.PatchRoles)
	users.Delete("/:id", perm("Users", "delete_user"), userHandler.Delete)

	// Roles (protegido)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", perm("Roles", "create_role"), roleHandler.Create)
	roles.Get("/", perm("Roles", "get_roles"), roleHandler.List)
	roles.Get("/store/:store_id", perm("Roles", "get_roles_by_store"), roleHandler.ListByStore)
	roles.Get("/:id", perm("Roles", "get_role"), roleHandler.GetByID)
	roles.Put("/:id", perm("Roles", "update_role"), roleHandler.Update)
	roles.Delete("/:id", perm("Roles", "delete_role"), roleHandler.Delete)

	// Permissions (protegido)
	permissions := protected.Group("/permissions")
	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions.Post("/", perm("Permissions", "create_permission"), permissionHandler.Create)
	permissions.Get("/", perm("Permissions", "get_permissions"), permissionHandler.List)
	permissions.Get("/:id", perm("Permissions", "get_permission"), permissionHandler.GetByID)
	permissions.Put("/:id", perm("Permissions", "update_permission"), permissionHandler.Update)
	permissions.Delete("/:id", perm("Permissions", "delete_permission"), permissionHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", perm("Stores", "create_store"), storeHandler.Create)
	stores.Get("/", perm("Stores", "get_stores"), storeHandler.List)
	stores.Get("/:id", perm("Stores", "get_store"), storeHandler.GetByID)
	stores.Put("/:id", perm("Stores", "update_store"), storeHandler.Update)
	stores.Delete("/:id", perm("Stores", "delete_store"), storeHandler.Delete)

	// Products (protegido, scoped)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", perm("Products", "create_product"), productHandler.Create)
	products.Get("/", perm("Products", "get_products"), productHandler.List)
	products.Get("/store/:store_id", perm("Products", "get_products_by_store"), productHandler.ListByStore)
	products.Get("/:id", perm("Products", "get_product"), productHandler.GetByID)
	products.Put("/:id", perm("Products", "update_product"), productHandler.Update)
	products.Delete("/:id", perm("Products", "delete_product"), productHandler.Delete)

	// Customers (protegido, scoped)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", perm("Customers", "create_customer"), customerHandler.Create)
	customers.Get("/", perm("Customers", "get_customers"), customerHandler.List)
	customers.Get("/store/:store_id", perm("Customers", "get_customers_by_store"), customerHandler.ListByStore)
	customers.Get("/:id", perm("Customers", "get_customer"), customerHandler.GetByID)
	customers.Put("/:id", perm("Customers", "update_customer"), customerHandler.Update)
	customers.Delete("/:id", perm("Customers", "delete_customer"), customerHandler.Delete)

	// Orders (protegido, scoped)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderPDF)
	ordersGroup.Post("/", perm("Orders", "create_order"), orderHandler.Create)
	ordersGroup.Get("/", perm("Orders", "get_orders"), orderHandler.List)
	ordersGroup.Get("/store/:store_id", perm("Orders", "get_orders_by_store"), orderHandler.ListByStore)
	ordersGroup.Get("/:id", perm("Orders", "get_order"), orderHandler.GetByID)
	ordersGroup.Get("/:id/pdf", perm("Orders", "get_order_pdf"), orderHandler.DownloadPDF)

	// Leads (protegido, scoped, solo lectura)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", perm("Leads", "get_leads"), leadHandler.List)
	leads.Get("/store/:store_id", perm("Leads", "get_leads_by_store"), leadHandler.ListByStore)
	leads.Get("/:id", perm("Leads", "get_lead"), leadHandler.GetByID)
}
