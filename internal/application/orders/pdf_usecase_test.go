package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/orders"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) Create(*entity.Store) error { return nil }

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.stores[id], nil
}

func (r *fakeStoreRepo) List(int, int) ([]*entity.Store, error) { return nil, nil }
func (r *fakeStoreRepo) Update(*entity.Store) error             { return nil }
func (r *fakeStoreRepo) Delete(string) error                    { return nil }

type fakeGenerator struct{ out []byte }

func (g *fakeGenerator) GenerateOrderPDF(context.Context, *entity.Order, *entity.Store, *entity.Customer) ([]byte, error) {
	return g.out, nil
}

func setupPDF(t *testing.T) (*orders.PDFUseCase, *memStore, string) {
	t.Helper()
	createUC, s := setup(t)
	out, err := createUC.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 2},
	))
	require.NoError(t, err)

	stores := &fakeStoreRepo{stores: map[string]*entity.Store{
		testStoreID: {ID: testStoreID, Name: "Tienda Uno", Address: "Calle 1 # 2-3"},
	}}
	uc := orders.NewPDFUseCase(&fakeOrderRepo{s}, stores, &fakeCustomerRepo{s}, &fakeGenerator{out: []byte("%PDF-fake")})
	return uc, s, out.ID
}

func TestDownloadOrderPDF_OK(t *testing.T) {
	uc, _, orderID := setupPDF(t)

	pdfBytes, filename, err := uc.DownloadOrderPDF(context.Background(), storeScope, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "orden_"+orderID+".pdf", filename)
}

// Orden inexistente o fuera del scope: NotFound, no error de infraestructura.
func TestDownloadOrderPDF_OrdenInexistente(t *testing.T) {
	uc, _, _ := setupPDF(t)

	_, _, err := uc.DownloadOrderPDF(context.Background(), storeScope, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	otherScope := domain.StoreScope{StoreIDs: []string{"store-2"}}
	_, _, err = uc.DownloadOrderPDF(context.Background(), otherScope, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Tienda o cliente ausentes también son NotFound: una fila que falta no debe
// presentarse como fallo interno.
func TestDownloadOrderPDF_FilasAusentesSonNotFound(t *testing.T) {
	uc, s, orderID := setupPDF(t)

	// Sin el cliente de la orden.
	delete(s.customers, "cust-1")
	_, _, err := uc.DownloadOrderPDF(context.Background(), storeScope, orderID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadOrderPDF_TiendaAusenteEsNotFound(t *testing.T) {
	createUC, s := setup(t)
	out, err := createUC.CreateOrder(context.Background(), storeScope, orderRequest(
		dto.OrderProductCreate{ProductID: "prod-a", Quantity: 1},
	))
	require.NoError(t, err)

	uc := orders.NewPDFUseCase(&fakeOrderRepo{s}, &fakeStoreRepo{stores: map[string]*entity.Store{}},
		&fakeCustomerRepo{s}, &fakeGenerator{out: []byte("%PDF-fake")})
	_, _, err = uc.DownloadOrderPDF(context.Background(), storeScope, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
