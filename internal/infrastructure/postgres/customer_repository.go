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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
// Las lecturas aplican el StoreScope en el WHERE: una fila fuera del scope
// simplemente no existe para el llamador.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, store_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.StoreID, customer.Name, customer.Email, customer.Phone,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID dentro del scope.
func (r *CustomerRepo) GetByID(id string, scope domain.StoreScope) (*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, email, phone, created_at, updated_at
		FROM customers WHERE id = $1`
	args := []any{id}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes visibles para el scope con paginación.
func (r *CustomerRepo) List(scope domain.StoreScope, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, email, phone, created_at, updated_at
		FROM customers`
	args := []any{}
	if !scope.CrossStore {
		query += ` WHERE store_id = ANY($1)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListByStore lista clientes de una tienda, paginados y scoped.
func (r *CustomerRepo) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, email, phone, created_at, updated_at
		FROM customers WHERE store_id = $1`
	args := []any{storeID}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

func (r *CustomerRepo) scanMany(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// HasOrders indica si existen órdenes que referencian al cliente.
func (r *CustomerRepo) HasOrders(customerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM orders WHERE customer_id = $1)`, customerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check customer orders: %w", err)
	}
	return exists, nil
}
