package repository

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCartRepository implements CartRepository using PostgreSQL
type PostgresCartRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCartRepository creates a new PostgresCartRepository
func NewPostgresCartRepository(pool *pgxpool.Pool) *PostgresCartRepository {
	return &PostgresCartRepository{pool: pool}
}

// FindByEmail returns the items in a diner's cart
func (r *PostgresCartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	query := `
		SELECT id::text, menu_item_id, name, image, price, email
		FROM carts
		WHERE email = $1
	`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.CartItem, 0)
	for rows.Next() {
		item := &domain.CartItem{}
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.Name, &item.Image, &item.Price, &item.Email); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Insert stores a new cart item
func (r *PostgresCartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	query := `
		INSERT INTO carts (id, menu_item_id, name, image, price, email)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	id := uuid.New().String()
	_, err := r.pool.Exec(ctx, query, id, item.MenuItemID, item.Name, item.Image, item.Price, item.Email)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Delete removes a cart item
func (r *PostgresCartRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return deleteRow(ctx, r.pool, CollectionCarts, id)
}
