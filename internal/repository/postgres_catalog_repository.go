package repository

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMenuRepository implements MenuRepository using PostgreSQL
type PostgresMenuRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMenuRepository creates a new PostgresMenuRepository
func NewPostgresMenuRepository(pool *pgxpool.Pool) *PostgresMenuRepository {
	return &PostgresMenuRepository{pool: pool}
}

// FindAll returns every menu item
func (r *PostgresMenuRepository) FindAll(ctx context.Context) ([]*domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, name, recipe, image, category, price FROM menu`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item := &domain.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Recipe, &item.Image, &item.Category, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PostgresReviewRepository implements ReviewRepository using PostgreSQL
type PostgresReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository
func NewPostgresReviewRepository(pool *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

// FindAll returns every review
func (r *PostgresReviewRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, name, details, rating FROM reviews`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review := &domain.Review{}
		if err := rows.Scan(&review.ID, &review.Name, &review.Details, &review.Rating); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
