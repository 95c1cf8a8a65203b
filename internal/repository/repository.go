package repository

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
)

// Collection names shared by every driver
const (
	CollectionUsers   = "users"
	CollectionMenu    = "menu"
	CollectionReviews = "reviews"
	CollectionCarts   = "carts"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindAll returns every user
	FindAll(ctx context.Context) ([]*domain.User, error)
	// FindByEmail returns nil, nil when no user has the email
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert stores a new user, returning domain.ErrDuplicateKey if the email is taken
	Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	// PromoteToAdmin sets the role of the user with the given id to admin
	PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error)
	// Delete removes the user with the given id
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	FindAll(ctx context.Context) ([]*domain.MenuItem, error)
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]*domain.Review, error)
}

// CartRepository defines the interface for cart data access
type CartRepository interface {
	// FindByEmail returns the cart items owned by email
	FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error)
	// Insert stores a new cart item
	Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error)
	// Delete removes the cart item with the given id
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
