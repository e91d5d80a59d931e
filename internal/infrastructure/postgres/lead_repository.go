package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un lead (lo invoca el motor de órdenes dentro de su tx).
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, store_id, customer_id, product_id, order_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.StoreID, lead.CustomerID, lead.ProductID, lead.OrderID,
		lead.Quantity, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID dentro del scope.
func (r *LeadRepo) GetByID(id string, scope domain.StoreScope) (*entity.Lead, error) {
	query := `
		SELECT id, store_id, customer_id, product_id, order_id, quantity, created_at, updated_at
		FROM leads WHERE id = $1`
	args := []any{id}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.StoreID, &l.CustomerID, &l.ProductID, &l.OrderID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista leads visibles para el scope con paginación.
func (r *LeadRepo) List(scope domain.StoreScope, limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT id, store_id, customer_id, product_id, order_id, quantity, created_at, updated_at
		FROM leads`
	args := []any{}
	if !scope.CrossStore {
		query += ` WHERE store_id = ANY($1)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListByStore lista leads de una tienda, paginados y scoped.
func (r *LeadRepo) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT id, store_id, customer_id, product_id, order_id, quantity, created_at, updated_at
		FROM leads WHERE store_id = $1`
	args := []any{storeID}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

func (r *LeadRepo) scanMany(query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.StoreID, &l.CustomerID, &l.ProductID, &l.OrderID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
