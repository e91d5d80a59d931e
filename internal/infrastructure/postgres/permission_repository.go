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

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Create persiste un nuevo permiso. El nombre es único global (case-sensitive).
func (r *PermissionRepo) Create(permission *entity.Permission) error {
	query := `
		INSERT INTO permissions (id, name, state, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		permission.ID, permission.Name, permission.State, permission.Description,
		permission.CreatedAt, permission.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID.
func (r *PermissionRepo) GetByID(id string) (*entity.Permission, error) {
	query := `
		SELECT id, name, state, description, created_at, updated_at
		FROM permissions WHERE id = $1`
	var p entity.Permission
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.State, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// List lista permisos con paginación.
func (r *PermissionRepo) List(limit, offset int) ([]*entity.Permission, error) {
	query := `
		SELECT id, name, state, description, created_at, updated_at
		FROM permissions ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.State, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un permiso existente.
func (r *PermissionRepo) Update(permission *entity.Permission) error {
	query := `
		UPDATE permissions SET name = $2, state = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		permission.ID, permission.Name, permission.State, permission.Description, permission.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update permission: %w", err)
	}
	return nil
}

// Delete elimina un permiso y sus grants en roles.
func (r *PermissionRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_grants WHERE permission_id = $1`, id); err != nil {
		return fmt.Errorf("delete permission grants: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}
