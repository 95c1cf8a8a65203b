package repository

import (
	"context"
	"errors"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// FindAll returns every user
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id::text, name, email, role, photo_url FROM users ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.PhotoURL); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// FindByEmail retrieves a user by email
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id::text, name, email, role, photo_url
		FROM users
		WHERE email = $1
	`
	user := &domain.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.PhotoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Insert stores a new user
func (r *PostgresUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	query := `
		INSERT INTO users (id, name, email, role, photo_url)
		VALUES ($1, $2, $3, $4, $5)
	`
	id := uuid.New().String()
	role := user.Role
	if role == "" {
		role = domain.RoleDefault
	}

	_, err := r.pool.Exec(ctx, query, id, user.Name, user.Email, role, user.PhotoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, err
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// PromoteToAdmin sets role to admin, reporting whether the row existed and changed
func (r *PostgresUserRepository) PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `
		WITH prev AS (
			SELECT id, role FROM users WHERE id = $1 FOR UPDATE
		)
		UPDATE users u
		SET role = $2
		FROM prev
		WHERE u.id = prev.id
		RETURNING prev.role
	`
	var previous string
	err = r.pool.QueryRow(ctx, query, key, string(domain.RoleAdmin)).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UpdateResult{Acknowledged: true}, nil
		}
		return nil, err
	}

	result := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if previous != string(domain.RoleAdmin) {
		result.ModifiedCount = 1
	}
	return result, nil
}

// Delete removes a user
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return deleteRow(ctx, r.pool, CollectionUsers, id)
}
