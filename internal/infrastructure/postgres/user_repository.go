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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El email es único global.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, cross_store_allowed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CrossStoreAllowed,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, cross_store_allowed, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email (lookup del login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, cross_store_allowed, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanOne(query, email)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CrossStoreAllowed, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, cross_store_allowed, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListByStore lista usuarios con membresía en la tienda dada.
func (r *UserRepo) ListByStore(storeID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.cross_store_allowed, u.created_at, u.updated_at
		FROM users u
		JOIN user_stores us ON us.user_id = u.id
		WHERE us.store_id = $1
		ORDER BY u.created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, storeID, limit, offset)
}

func (r *UserRepo) scanMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CrossStoreAllowed, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, cross_store_allowed = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CrossStoreAllowed, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario junto con sus membresías de roles y tiendas.
func (r *UserRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user roles: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM user_stores WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user stores: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// AddRole crea la membresía usuario→rol (idempotente vía ON CONFLICT).
func (r *UserRepo) AddRole(userID, roleID string) error {
	query := `
		INSERT INTO user_roles (id, user_id, role_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, role_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), userID, roleID)
	if err != nil {
		return fmt.Errorf("add user role: %w", err)
	}
	return nil
}

// RemoveRole elimina la membresía usuario→rol.
func (r *UserRepo) RemoveRole(userID, roleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`, userID, roleID)
	if err != nil {
		return fmt.Errorf("remove user role: %w", err)
	}
	return nil
}

// ListRoleIDs devuelve los ids de rol asignados al usuario.
func (r *UserRepo) ListRoleIDs(userID string) ([]string, error) {
	return r.listIDs(`SELECT role_id FROM user_roles WHERE user_id = $1`, userID)
}

// AddStore crea la membresía usuario→tienda (idempotente vía ON CONFLICT).
func (r *UserRepo) AddStore(userID, storeID string) error {
	query := `
		INSERT INTO user_stores (id, user_id, store_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), userID, storeID)
	if err != nil {
		return fmt.Errorf("add user store: %w", err)
	}
	return nil
}

// RemoveStore elimina la membresía usuario→tienda.
func (r *UserRepo) RemoveStore(userID, storeID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM user_stores WHERE user_id = $1 AND store_id = $2`, userID, storeID)
	if err != nil {
		return fmt.Errorf("remove user store: %w", err)
	}
	return nil
}

// ListStoreIDs devuelve los ids de tienda del usuario (insumo del StoreScope).
func (r *UserRepo) ListStoreIDs(userID string) ([]string, error) {
	return r.listIDs(`SELECT store_id FROM user_stores WHERE user_id = $1`, userID)
}

func (r *UserRepo) listIDs(query, userID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list membership ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan membership id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
