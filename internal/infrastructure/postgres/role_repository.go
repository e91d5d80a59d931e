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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol (sin grants; ver ReplaceGrants).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, store_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, nullIfEmpty(role.StoreID), role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID con sus permisos otorgados cargados.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, name, COALESCE(store_id, ''), created_at, updated_at
		FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.Name, &role.StoreID, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	perms, err := r.permissionsOf(role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

// List lista roles con paginación (con permisos cargados).
func (r *RoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	query := `
		SELECT id, name, COALESCE(store_id, ''), created_at, updated_at
		FROM roles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanManyWithPerms(query, limit, offset)
}

// ListByStore lista roles de una tienda (con permisos cargados).
func (r *RoleRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Role, error) {
	query := `
		SELECT id, name, COALESCE(store_id, ''), created_at, updated_at
		FROM roles WHERE store_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanManyWithPerms(query, storeID, limit, offset)
}

func (r *RoleRepo) scanManyWithPerms(query string, args ...any) ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.StoreID, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, role := range list {
		perms, err := r.permissionsOf(role.ID)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	return list, nil
}

// ListByUser devuelve los roles asignados al usuario con permisos cargados.
// Es el insumo del resolver de autorización: se relee en cada request para
// que revocaciones de rol o permiso surtan efecto de inmediato.
func (r *RoleRepo) ListByUser(userID string) ([]entity.Role, error) {
	query := `
		SELECT r.id, r.name, COALESCE(r.store_id, ''), r.created_at, r.updated_at
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles by user: %w", err)
	}
	defer rows.Close()
	var list []entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.StoreID, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		perms, err := r.permissionsOf(list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Permissions = perms
	}
	return list, nil
}

// permissionsOf carga los permisos otorgados a un rol.
func (r *RoleRepo) permissionsOf(roleID string) ([]entity.Permission, error) {
	query := `
		SELECT p.id, p.name, p.state, p.description, p.created_at, p.updated_at
		FROM permissions p
		JOIN role_grants rg ON rg.permission_id = p.id
		WHERE rg.role_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()
	var perms []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.State, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// Update actualiza un rol existente (sin tocar sus grants).
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// ReplaceGrants reemplaza el conjunto completo de grants del rol:
// borra todos los existentes e inserta los nuevos.
func (r *RoleRepo) ReplaceGrants(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_grants WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("delete role grants: %w", err)
	}
	for _, permissionID := range permissionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO role_grants (id, role_id, permission_id) VALUES ($1, $2, $3)`,
			uuid.New().String(), roleID, permissionID,
		)
		if err != nil {
			return fmt.Errorf("insert role grant: %w", err)
		}
	}
	return nil
}

// Delete elimina el rol junto con sus grants y asignaciones a usuarios.
func (r *RoleRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_grants WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role grants: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM user_roles WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role assignments: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
