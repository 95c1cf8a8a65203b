package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id        UUID PRIMARY KEY,
		name      TEXT NOT NULL DEFAULT '',
		email     TEXT NOT NULL UNIQUE,
		role      TEXT NOT NULL DEFAULT 'default',
		photo_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS menu (
		id       UUID PRIMARY KEY,
		name     TEXT NOT NULL DEFAULT '',
		recipe   TEXT NOT NULL DEFAULT '',
		image    TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price    DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id      UUID PRIMARY KEY,
		name    TEXT NOT NULL DEFAULT '',
		details TEXT NOT NULL DEFAULT '',
		rating  DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS carts (
		id           UUID PRIMARY KEY,
		menu_item_id TEXT NOT NULL DEFAULT '',
		name         TEXT NOT NULL DEFAULT '',
		image        TEXT NOT NULL DEFAULT '',
		price        DOUBLE PRECISION NOT NULL DEFAULT 0,
		email        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_carts_email ON carts (email)`,
}

// EnsureSchema creates the tables used by the postgres repositories
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func parseUUID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return parsed.String(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func deleteRow(ctx context.Context, pool *pgxpool.Pool, table, id string) (*domain.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	tag, err := pool.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", key)
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
