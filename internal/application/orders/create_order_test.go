package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/orders"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + restore en rollback)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	orders    []*entity.Order
	leads     []*entity.Lead
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[string]*entity.Customer),
		products:  make(map[string]*entity.Product),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for _, o := range s.orders {
		cp := *o
		c.orders = append(c.orders, &cp)
	}
	for _, l := range s.leads {
		cp := *l
		c.leads = append(c.leads, &cp)
	}
	return c
}

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string, scope domain.StoreScope) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok || !scope.Allows(c.StoreID) {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(domain.StoreScope, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) ListByStore(domain.StoreScope, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(string) error           { return nil }
func (r *fakeCustomerRepo) HasOrders(string) (bool, error) {
	return false, nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string, scope domain.StoreScope) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || !scope.Allows(p.StoreID) {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetForUpdate(id, storeID string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.StoreID != storeID {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) List(domain.StoreScope, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListByStore(domain.StoreScope, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(*entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	r.s.products[id].Stock = stock
	return nil
}

func (r *fakeProductRepo) Delete(string) error { return nil }

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.s.orders = append(r.s.orders, o)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string, scope domain.StoreScope) (*entity.Order, error) {
	for _, o := range r.s.orders {
		if o.ID == id && scope.Allows(o.StoreID) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(scope domain.StoreScope, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if scope.Allows(o.StoreID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStore(scope domain.StoreScope, storeID string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.StoreID == storeID && scope.Allows(o.StoreID) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeLeadRepo struct{ s *memStore }

func (r *fakeLeadRepo) Create(l *entity.Lead) error {
	r.s.leads = append(r.s.leads, l)
	return nil
}

func (r *fakeLeadRepo) GetByID(string, domain.StoreScope) (*entity.Lead, error) { return nil, nil }
func (r *fakeLeadRepo) List(domain.StoreScope, int, int) ([]*entity.Lead, error) {
	return nil, nil
}
func (r *fakeLeadRepo) ListByStore(domain.StoreScope, string, int, int) ([]*entity.Lead, error) {
	return nil, nil
}

// fakeTxRunner aplica la semántica de commit/rollback: si fn falla, restaura
// el snapshot previo y ninguna escritura queda visible.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	leadRepo repository.LeadRepository,
) error) error {
	snapshot := r.s.clone()
	err := fn(&fakeCustomerRepo{r.s}, &fakeProductRepo{r.s}, &fakeOrderRepo{r.s}, &fakeLeadRepo{r.s})
	if err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const testStoreID = "store-1"

var storeScope = domain.StoreScope{StoreIDs: []string{testStoreID}}

func setup(t *testing.T) (*orders.CreateOrderUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.customers["cust-1"] = &entity.Customer{ID: "cust-1", StoreID: testStoreID, Name: "Cliente Uno"}
	s.products["prod-a"] = &entity.Product{
		ID: "prod-a", StoreID: testStoreID, Name: "Producto A",
		Price: decimal.NewFromInt(100), Stock: 5,
	}
	s.products["prod-b"] = &entity.Product{
		ID: "prod-b", StoreID: testStoreID, Name: "Producto B",
		Price: decimal.NewFromInt(50), Stock: 0,
	}
	uc := orders.NewCreateOrderUseCase(&fakeTxRunner{s}, &fakeCustomerRepo{s}, &fakeOrderRepo{s}, nil)
	return uc, s
}

func orderRequest(lines ...dto.OrderProductCreate) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		StoreID:       testStoreID,
		CustomerID:    "cust-1",
		OrderProducts: lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fulfillment
// ──────────────────────────────────────────────────────────────────────────────

// Stock suficiente: línea completa, sin leads, stock decrementado.
func TestCreateOrder_StockSuficiente(t *testing.T) {
	uc, s := setup(t)

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 5},
	))
	require.NoError(t, err)

	require.Len(t, out.OrderProducts, 1)
	assert.Equal(t, int64(5), out.OrderProducts[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(500)), "total = 5 × 100")
	assert.Empty(t, s.leads, "sin faltante no hay leads")
	assert.Equal(t, int64(0), s.products["prod-a"].Stock)
}

// Stock parcial: la línea se recorta al stock y el faltante genera un lead.
func TestCreateOrder_StockParcial_GeneraLead(t *testing.T) {
	uc, s := setup(t)
	s.products["prod-a"].Stock = 3

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 10},
	))
	require.NoError(t, err)

	require.Len(t, out.OrderProducts, 1)
	assert.Equal(t, int64(3), out.OrderProducts[0].Quantity, "se satisface solo lo que hay")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(300)), "el total excluye el faltante")
	assert.Equal(t, int64(0), s.products["prod-a"].Stock)

	require.Len(t, s.leads, 1)
	lead := s.leads[0]
	assert.Equal(t, int64(7), lead.Quantity, "el lead registra el faltante exacto")
	assert.Equal(t, "prod-a", lead.ProductID)
	assert.Equal(t, "cust-1", lead.CustomerID)
	assert.Equal(t, out.ID, lead.OrderID, "el lead enlaza la orden creada")
}

// Stock cero en una de varias líneas: la línea se descarta entera y deja lead.
func TestCreateOrder_LineaSinStock_SeDescarta(t *testing.T) {
	uc, s := setup(t)

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 2},
		dto.OrderProductCreate{ProductID: "prod-b", Quantity: 4},
	))
	require.NoError(t, err)

	require.Len(t, out.OrderProducts, 1, "la línea sin stock no aparece en la orden")
	assert.Equal(t, "prod-a", out.OrderProducts[0].ProductID)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(200)))

	require.Len(t, s.leads, 1)
	assert.Equal(t, "prod-b", s.leads[0].ProductID)
	assert.Equal(t, int64(4), s.leads[0].Quantity)
}

// Ninguna línea satisfacible: la orden se rechaza completa y nada persiste.
func TestCreateOrder_SinStockTotal_RechazaYNoPersiste(t *testing.T) {
	uc, s := setup(t)

	_, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-b", Quantity: 4},
	))
	assert.ErrorIs(t, err, domain.ErrNoProductsAvailable)

	assert.Empty(t, s.orders, "no debe quedar orden")
	assert.Empty(t, s.leads, "el rollback descarta los leads")
	assert.Equal(t, int64(0), s.products["prod-b"].Stock)
}

// El rechazo por fulfillment vacío también revierte al cliente nuevo inline.
func TestCreateOrder_RechazoRevierteClienteNuevo(t *testing.T) {
	uc, s := setup(t)

	in := dto.CreateOrderRequest{
		StoreID:         testStoreID,
		NewCustomerData: &dto.OrderCustomerCreate{Name: "Cliente Nuevo"},
		OrderProducts:   []dto.OrderProductCreate{{ProductID: "prod-b", Quantity: 1}},
	}
	_, err := uc.CreateOrder(context.Background(), storeScope, in)
	assert.ErrorIs(t, err, domain.ErrNoProductsAvailable)
	assert.Len(t, s.customers, 1, "el cliente inline no debe sobrevivir al rollback")
}

// Cliente nuevo inline: orden y leads referencian la misma fila recién creada.
func TestCreateOrder_ClienteNuevoInline(t *testing.T) {
	uc, s := setup(t)
	s.products["prod-a"].Stock = 1

	in := dto.CreateOrderRequest{
		StoreID:         testStoreID,
		NewCustomerData: &dto.OrderCustomerCreate{Name: "Cliente Nuevo", Email: "nuevo@x.co"},
		OrderProducts:   []dto.OrderProductCreate{{ProductID: "prod-a", Quantity: 3}},
	}
	out, err := uc.CreateOrder(context.Background(), storeScope, in)
	require.NoError(t, err)

	assert.Equal(t, "Cliente Nuevo", out.Customer.Name)
	require.Len(t, s.leads, 1)
	assert.Equal(t, out.Customer.ID, s.leads[0].CustomerID,
		"el lead referencia al cliente recién creado")
}

// Dos líneas del mismo producto consumen el mismo saldo: nunca se asigna más
// que el stock real ni el total factura unidades inexistentes.
func TestCreateOrder_LineasDuplicadasCompartenStock(t *testing.T) {
	uc, s := setup(t)

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 5},
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 5},
	))
	require.NoError(t, err)

	var fulfilled int64
	for _, l := range out.OrderProducts {
		fulfilled += l.Quantity
	}
	assert.Equal(t, int64(5), fulfilled, "lo asignado nunca supera el stock real")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(500)), "el total solo factura unidades existentes")
	assert.Equal(t, int64(0), s.products["prod-a"].Stock, "el stock nunca queda negativo")

	require.Len(t, s.leads, 1)
	assert.Equal(t, int64(5), s.leads[0].Quantity, "la segunda línea queda entera en backorder")
}

// Reparto parcial entre líneas duplicadas: la primera línea se sirve completa
// y la segunda recibe solo el remanente.
func TestCreateOrder_LineasDuplicadasRepartoParcial(t *testing.T) {
	uc, s := setup(t)
	s.products["prod-a"].Stock = 7

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 5},
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 5},
	))
	require.NoError(t, err)

	require.Len(t, out.OrderProducts, 2)
	assert.Equal(t, int64(5), out.OrderProducts[0].Quantity)
	assert.Equal(t, int64(2), out.OrderProducts[1].Quantity, "la segunda línea toma el remanente")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, int64(0), s.products["prod-a"].Stock)

	require.Len(t, s.leads, 1)
	assert.Equal(t, int64(3), s.leads[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de entrada
// ──────────────────────────────────────────────────────────────────────────────

// Exactamente uno de customer_id / new_customer_data.
func TestCreateOrder_ClienteAmbiguoOAusente(t *testing.T) {
	uc, _ := setup(t)

	both := dto.CreateOrderRequest{
		StoreID:         testStoreID,
		CustomerID:      "cust-1",
		NewCustomerData: &dto.OrderCustomerCreate{Name: "Otro"},
		OrderProducts:   []dto.OrderProductCreate{{ProductID: "prod-a", Quantity: 1}},
	}
	_, err := uc.CreateOrder(context.Background(), storeScope, both)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neither := dto.CreateOrderRequest{
		StoreID:       testStoreID,
		OrderProducts: []dto.OrderProductCreate{{ProductID: "prod-a", Quantity: 1}},
	}
	_, err = uc.CreateOrder(context.Background(), storeScope, neither)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cliente existente de otra tienda: fuera del scope de la orden → NotFound.
func TestCreateOrder_ClienteDeOtraTienda_NoExiste(t *testing.T) {
	uc, s := setup(t)
	s.customers["cust-2"] = &entity.Customer{ID: "cust-2", StoreID: "store-2", Name: "Ajeno"}

	in := orderRequest(dto.OrderProductCreate{ProductID: "prod-a", Quantity: 1})
	in.CustomerID = "cust-2"
	_, err := uc.CreateOrder(context.Background(), storeScope, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Producto inexistente (o de otra tienda): aborta la orden completa.
func TestCreateOrder_ProductoInexistente_Aborta(t *testing.T) {
	uc, s := setup(t)

	_, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 1},
		dto.OrderProductCreate{ProductID: "no-existe", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
	assert.Equal(t, int64(5), s.products["prod-a"].Stock, "nada se descuenta si la orden aborta")
}

// Cantidades no positivas y órdenes vacías son inválidas.
func TestCreateOrder_LineasInvalidas(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.CreateOrder(context.Background(), storeScope, orderRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 0},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: -2},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Tienda fuera del scope del usuario: prohibido antes de tocar nada.
func TestCreateOrder_TiendaFueraDeScope(t *testing.T) {
	uc, _ := setup(t)

	in := orderRequest(dto.OrderProductCreate{ProductID: "prod-a", Quantity: 1})
	otherScope := domain.StoreScope{StoreIDs: []string{"store-2"}}
	_, err := uc.CreateOrder(context.Background(), otherScope, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Un usuario cross-store sí puede operar sobre cualquier tienda.
	cross := domain.StoreScope{CrossStore: true}
	_, err = uc.CreateOrder(context.Background(), cross, in)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_RespetaScope(t *testing.T) {
	uc, _ := setup(t)

	out, err := uc.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 1},
	))
	require.NoError(t, err)

	got, err := uc.GetOrder(out.ID, storeScope)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)

	// Fuera del scope la orden se comporta como inexistente.
	_, err = uc.GetOrder(out.ID, domain.StoreScope{StoreIDs: []string{"store-2"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
