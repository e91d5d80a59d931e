package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden y todas sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, store_id, customer_id, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.StoreID, order.CustomerID, order.Total, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		line.OrderID = order.ID
		_, err := r.q.Exec(ctx,
			`INSERT INTO order_lines (id, order_id, product_id, price, quantity, name)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, line.OrderID, line.ProductID, line.Price, line.Quantity, line.Name,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID dentro del scope, con líneas cargadas.
func (r *OrderRepo) GetByID(id string, scope domain.StoreScope) (*entity.Order, error) {
	query := `
		SELECT id, store_id, customer_id, total, created_at, updated_at
		FROM orders WHERE id = $1`
	args := []any{id}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&o.ID, &o.StoreID, &o.CustomerID, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesOf(o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List lista órdenes visibles para el scope con paginación (líneas cargadas).
func (r *OrderRepo) List(scope domain.StoreScope, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, store_id, customer_id, total, created_at, updated_at
		FROM orders`
	args := []any{}
	if !scope.CrossStore {
		query += ` WHERE store_id = ANY($1)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListByStore lista órdenes de una tienda, paginadas y scoped.
func (r *OrderRepo) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, store_id, customer_id, total, created_at, updated_at
		FROM orders WHERE store_id = $1`
	args := []any{storeID}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

func (r *OrderRepo) scanMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.StoreID, &o.CustomerID, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesOf(o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}

// linesOf carga las líneas de una orden.
func (r *OrderRepo) linesOf(orderID string) ([]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, price, quantity, name
		FROM order_lines WHERE order_id = $1
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Price, &l.Quantity, &l.Name); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
