package repository

import (
	"context"
	"sync"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/google/uuid"
)

// MemoryUserRepository implements UserRepository using in-memory storage
// This is useful for testing and development
type MemoryUserRepository struct {
	users   map[string]*domain.User
	byEmail map[string]string // email -> userID
	order   []string
	mu      sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// FindAll returns every user in insertion order
func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		u := *r.users[id]
		users = append(users, &u)
	}
	return users, nil
}

// FindByEmail retrieves a user by email
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[email]
	if !exists {
		return nil, nil
	}
	u := *r.users[id]
	return &u, nil
}

// Insert stores a new user
func (r *MemoryUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrDuplicateKey
	}

	u := *user
	u.ID = uuid.New().String()
	r.users[u.ID] = &u
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)

	return &domain.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

// PromoteToAdmin sets role to admin
func (r *MemoryUserRepository) PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &domain.UpdateResult{Acknowledged: true}
	user, exists := r.users[key]
	if !exists {
		return result, nil
	}

	result.MatchedCount = 1
	if user.Role != domain.RoleAdmin {
		user.Role = domain.RoleAdmin
		result.ModifiedCount = 1
	}
	return result, nil
}

// Delete removes a user
func (r *MemoryUserRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[key]
	if !exists {
		return &domain.DeleteResult{Acknowledged: true}, nil
	}

	delete(r.byEmail, user.Email)
	delete(r.users, key)
	r.order = removeID(r.order, key)

	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// MemoryMenuRepository implements MenuRepository using in-memory storage
type MemoryMenuRepository struct {
	items []*domain.MenuItem
	mu    sync.RWMutex
}

// NewMemoryMenuRepository creates a menu repository seeded with items
func NewMemoryMenuRepository(items ...*domain.MenuItem) *MemoryMenuRepository {
	r := &MemoryMenuRepository{}
	for _, item := range items {
		i := *item
		if i.ID == "" {
			i.ID = uuid.New().String()
		}
		r.items = append(r.items, &i)
	}
	return r
}

// FindAll returns every menu item
func (r *MemoryMenuRepository) FindAll(ctx context.Context) ([]*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		i := *item
		items = append(items, &i)
	}
	return items, nil
}

// MemoryReviewRepository implements ReviewRepository using in-memory storage
type MemoryReviewRepository struct {
	reviews []*domain.Review
	mu      sync.RWMutex
}

// NewMemoryReviewRepository creates a review repository seeded with reviews
func NewMemoryReviewRepository(reviews ...*domain.Review) *MemoryReviewRepository {
	r := &MemoryReviewRepository{}
	for _, review := range reviews {
		rv := *review
		if rv.ID == "" {
			rv.ID = uuid.New().String()
		}
		r.reviews = append(r.reviews, &rv)
	}
	return r
}

// FindAll returns every review
func (r *MemoryReviewRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*domain.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		rv := *review
		reviews = append(reviews, &rv)
	}
	return reviews, nil
}

// MemoryCartRepository implements CartRepository using in-memory storage
type MemoryCartRepository struct {
	items map[string]*domain.CartItem
	order []string
	mu    sync.RWMutex
}

// NewMemoryCartRepository creates a new in-memory cart repository
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		items: make(map[string]*domain.CartItem),
	}
}

// FindByEmail returns the items in a diner's cart
func (r *MemoryCartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.CartItem, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.Email == email {
			i := *item
			items = append(items, &i)
		}
	}
	return items, nil
}

// Insert stores a new cart item
func (r *MemoryCartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := *item
	i.ID = uuid.New().String()
	r.items[i.ID] = &i
	r.order = append(r.order, i.ID)

	return &domain.InsertResult{Acknowledged: true, InsertedID: i.ID}, nil
}

// Delete removes a cart item
func (r *MemoryCartRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return &domain.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.items, key)
	r.order = removeID(r.order, key)

	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// MemoryPinger always reports the in-memory store as reachable
type MemoryPinger struct{}

// Ping implements Pinger
func (MemoryPinger) Ping(ctx context.Context) error { return nil }

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
