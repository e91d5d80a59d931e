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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.StoreID, product.Name, product.Price, product.Stock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro del scope.
func (r *ProductRepo) GetByID(id string, scope domain.StoreScope) (*entity.Product, error) {
	query := `
		SELECT id, store_id, name, price, stock, created_at, updated_at
		FROM products WHERE id = $1`
	args := []any{id}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	return r.scanOne(query, args...)
}

// GetForUpdate obtiene el producto de la tienda bloqueando la fila
// (SELECT FOR UPDATE); solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id, storeID string) (*entity.Product, error) {
	query := `
		SELECT id, store_id, name, price, stock, created_at, updated_at
		FROM products WHERE id = $1 AND store_id = $2
		FOR UPDATE`
	return r.scanOne(query, id, storeID)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos visibles para el scope con paginación.
func (r *ProductRepo) List(scope domain.StoreScope, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, store_id, name, price, stock, created_at, updated_at
		FROM products`
	args := []any{}
	if !scope.CrossStore {
		query += ` WHERE store_id = ANY($1)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListByStore lista productos de una tienda, paginados y scoped.
func (r *ProductRepo) ListByStore(scope domain.StoreScope, storeID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, store_id, name, price, stock, created_at, updated_at
		FROM products WHERE store_id = $1`
	args := []any{storeID}
	if !scope.CrossStore {
		query += ` AND store_id = ANY($2)`
		args = append(args, scope.StoreIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente (incluido el stock en ediciones directas).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escribe el nuevo contador de stock (usado por el motor de órdenes,
// siempre bajo el lock de fila de GetForUpdate).
func (r *ProductRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
