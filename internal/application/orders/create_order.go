package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/metrics"
)

// CreateOrderUseCase convierte una orden solicitada en una orden comprometida:
// cada línea se satisface hasta donde alcanza el stock, el stock se descuenta
// y el faltante se deriva a leads (backorders). El total se calcula solo sobre
// lo efectivamente satisfecho.
type CreateOrderUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	met          *metrics.APIMetrics
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	met *metrics.APIMetrics,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		met:          met,
	}
}

// allocation resultado por línea: cantidad satisfecha (0 = línea descartada)
// y faltante que se deriva a lead. Una línea termina en exactamente uno de
// tres estados: satisfecha completa, parcial con lead, o descartada con lead.
type allocation struct {
	product   *entity.Product
	fulfilled int64
	shortfall int64
}

// CreateOrder ejecuta el protocolo de fulfillment dentro de una transacción:
//  1. resuelve el cliente (existente scoped a la tienda, o nuevo inline);
//  2. valida y bloquea (FOR UPDATE) todos los productos solicitados;
//  3. asigna por línea: cantidad = min(pedido, stock), faltante → lead;
//  4. si ninguna línea quedó retenida, falla y nada se persiste;
//  5. persiste orden+líneas, cliente nuevo, decrementos de stock y leads.
//
// Cualquier error antes del commit deja el estado intacto: no hay leads
// huérfanos ni stock descontado sin orden.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, scope domain.StoreScope, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.StoreID == "" || len(in.OrderProducts) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(in.StoreID) {
		return nil, domain.ErrForbidden
	}
	if in.CustomerID != "" && in.NewCustomerData != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.OrderProducts {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Cliente existente: lookup scoped a la tienda de la orden (una fila de
	// otra tienda se comporta como inexistente).
	storeScope := domain.StoreScope{StoreIDs: []string{in.StoreID}}
	var existing *entity.Customer
	if in.CustomerID != "" {
		var err error
		existing, err = uc.customerRepo.GetByID(in.CustomerID, storeScope)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
	} else if in.NewCustomerData == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	orderID := uuid.New().String()

	var order *entity.Order
	var customer *entity.Customer
	var leadsCreated int64

	err := uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		leadRepo repository.LeadRepository,
	) error {
		// Cliente nuevo inline: se crea dentro de la tx para que un fallo
		// posterior también lo revierta. El id se resuelve aquí para que
		// orden y leads referencien la misma fila.
		if existing != nil {
			customer = existing
		} else {
			customer = &entity.Customer{
				ID:        uuid.New().String(),
				StoreID:   in.StoreID,
				Name:      in.NewCustomerData.Name,
				Email:     in.NewCustomerData.Email,
				Phone:     in.NewCustomerData.Phone,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := customerRepo.Create(customer); err != nil {
				return err
			}
		}

		// Bloquear y validar todos los productos antes de asignar: cualquier
		// producto ausente aborta la orden completa. El lock de fila
		// serializa órdenes concurrentes sobre el mismo producto. Un producto
		// repetido en varias líneas se bloquea una sola vez y las líneas
		// consumen el mismo saldo restante en orden de llegada.
		products := make(map[string]*entity.Product)
		remaining := make(map[string]int64)
		allocations := make([]allocation, 0, len(in.OrderProducts))
		for _, line := range in.OrderProducts {
			product, ok := products[line.ProductID]
			if !ok {
				var err error
				product, err = productRepo.GetForUpdate(line.ProductID, in.StoreID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				products[product.ID] = product
				remaining[product.ID] = product.Stock
			}
			fulfilled := line.Quantity
			if remaining[product.ID] < fulfilled {
				fulfilled = remaining[product.ID]
			}
			remaining[product.ID] -= fulfilled
			allocations = append(allocations, allocation{
				product:   product,
				fulfilled: fulfilled,
				shortfall: line.Quantity - fulfilled,
			})
		}

		// Plan en memoria: líneas retenidas con snapshot de precio/nombre y
		// total solo sobre lo satisfecho. Una línea con stock cero se
		// descarta por completo (nunca una línea con cantidad 0).
		total := decimal.Zero
		var lines []entity.OrderLine
		for _, alloc := range allocations {
			if alloc.fulfilled == 0 {
				continue
			}
			lines = append(lines, entity.OrderLine{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: alloc.product.ID,
				Price:     alloc.product.Price,
				Quantity:  alloc.fulfilled,
				Name:      alloc.product.Name,
			})
			total = total.Add(alloc.product.Price.Mul(decimal.NewFromInt(alloc.fulfilled)))
		}

		// Guard de fulfillment vacío: sin líneas retenidas no hay orden, y el
		// rollback descarta también cliente nuevo y locks.
		if len(lines) == 0 {
			return domain.ErrNoProductsAvailable
		}

		order = &entity.Order{
			ID:         orderID,
			StoreID:    in.StoreID,
			CustomerID: customer.ID,
			Total:      total,
			Lines:      lines,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// Escribir el stock final una sola vez por producto (el saldo ya
		// descuenta todas las líneas que lo consumieron).
		for id, product := range products {
			if remaining[id] != product.Stock {
				if err := productRepo.UpdateStock(id, remaining[id]); err != nil {
					return err
				}
			}
		}

		// Registrar los leads, enlazando cada uno a la orden recién creada.
		for _, alloc := range allocations {
			if alloc.shortfall > 0 {
				lead := &entity.Lead{
					ID:         uuid.New().String(),
					StoreID:    in.StoreID,
					CustomerID: customer.ID,
					ProductID:  alloc.product.ID,
					OrderID:    orderID,
					Quantity:   alloc.shortfall,
					CreatedAt:  now,
					UpdatedAt:  now,
				}
				if err := leadRepo.Create(lead); err != nil {
					return err
				}
				leadsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.met != nil {
		uc.met.OrdersCreated.Inc()
		uc.met.LeadsCreated.Add(float64(leadsCreated))
	}

	return toOrderResponse(order, customer), nil
}

// GetOrder obtiene una orden por id con sus líneas, respetando el scope.
func (uc *CreateOrderUseCase) GetOrder(id string, scope domain.StoreScope) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id, scope)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID, domain.StoreScope{CrossStore: true})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, customer), nil
}

// ListOrders lista órdenes visibles para el scope, paginadas.
func (uc *CreateOrderUseCase) ListOrders(scope domain.StoreScope, limit, offset int) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list)
}

// ListOrdersByStore lista órdenes de una tienda, paginadas y scoped.
func (uc *CreateOrderUseCase) ListOrdersByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByStore(scope, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list)
}

func (uc *CreateOrderUseCase) toResponses(list []*entity.Order) ([]*dto.OrderResponse, error) {
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, order := range list {
		customer, err := uc.customerRepo.GetByID(order.CustomerID, domain.StoreScope{CrossStore: true})
		if err != nil {
			return nil, err
		}
		out = append(out, toOrderResponse(order, customer))
	}
	return out, nil
}

func toOrderResponse(order *entity.Order, customer *entity.Customer) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            order.ID,
		StoreID:       order.StoreID,
		Total:         order.Total,
		OrderProducts: make([]dto.OrderLineResponse, 0, len(order.Lines)),
		CreatedAt:     order.CreatedAt,
	}
	if customer != nil {
		resp.Customer = dto.CustomerResponse{
			ID:        customer.ID,
			StoreID:   customer.StoreID,
			Name:      customer.Name,
			Email:     customer.Email,
			Phone:     customer.Phone,
			CreatedAt: customer.CreatedAt,
			UpdatedAt: customer.UpdatedAt,
		}
	}
	for _, line := range order.Lines {
		resp.OrderProducts = append(resp.OrderProducts, dto.OrderLineResponse{
			ProductID: line.ProductID,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Name:      line.Name,
		})
	}
	return resp
}
