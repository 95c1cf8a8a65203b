package di

import (
	"errors"
	"fmt"

	"github.com/KakonDebnath/bistro-boss-server/internal/handler"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/config"
	"github.com/KakonDebnath/bistro-boss-server/pkg/database"
	"github.com/KakonDebnath/bistro-boss-server/pkg/mongodb"
)

var ErrStoreNotConnected = errors.New("storage driver selected but no connection provided")

// Container holds all dependencies for the server
type Container struct {
	// Infrastructure
	Store repository.Pinger

	// Repositories
	UserRepo   repository.UserRepository
	MenuRepo   repository.MenuRepository
	ReviewRepo repository.ReviewRepository
	CartRepo   repository.CartRepository

	// Services
	TokenService   service.TokenService
	UserService    service.UserService
	CatalogService service.CatalogService
	CartService    service.CartService

	// Handlers
	HealthHandler  *handler.HealthHandler
	TokenHandler   *handler.TokenHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	// Storage is one of config.StorageMongoDB, config.StoragePostgres, config.StorageMemory
	Storage  string
	Mongo    *mongodb.DB
	Postgres *database.PostgresDB

	// Memory overrides the in-memory repositories, used by tests to seed data
	Memory *MemoryRepositories

	TokenConfig *service.TokenServiceConfig
}

// MemoryRepositories groups the in-memory repositories
type MemoryRepositories struct {
	Users   *repository.MemoryUserRepository
	Menu    *repository.MemoryMenuRepository
	Reviews *repository.MemoryReviewRepository
	Carts   *repository.MemoryCartRepository
}

// NewMemoryRepositories creates empty in-memory repositories
func NewMemoryRepositories() *MemoryRepositories {
	return &MemoryRepositories{
		Users:   repository.NewMemoryUserRepository(),
		Menu:    repository.NewMemoryMenuRepository(),
		Reviews: repository.NewMemoryReviewRepository(),
		Carts:   repository.NewMemoryCartRepository(),
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) (*Container, error) {
	c := &Container{}

	switch cfg.Storage {
	case config.StorageMongoDB:
		if cfg.Mongo == nil {
			return nil, fmt.Errorf("%s: %w", cfg.Storage, ErrStoreNotConnected)
		}
		db := cfg.Mongo.Database()
		c.Store = cfg.Mongo
		c.UserRepo = repository.NewMongoUserRepository(db)
		c.MenuRepo = repository.NewMongoMenuRepository(db)
		c.ReviewRepo = repository.NewMongoReviewRepository(db)
		c.CartRepo = repository.NewMongoCartRepository(db)
	case config.StoragePostgres:
		if cfg.Postgres == nil {
			return nil, fmt.Errorf("%s: %w", cfg.Storage, ErrStoreNotConnected)
		}
		pool := cfg.Postgres.Pool()
		c.Store = cfg.Postgres
		c.UserRepo = repository.NewPostgresUserRepository(pool)
		c.MenuRepo = repository.NewPostgresMenuRepository(pool)
		c.ReviewRepo = repository.NewPostgresReviewRepository(pool)
		c.CartRepo = repository.NewPostgresCartRepository(pool)
	case config.StorageMemory:
		mem := cfg.Memory
		if mem == nil {
			mem = NewMemoryRepositories()
		}
		c.Store = repository.MemoryPinger{}
		c.UserRepo = mem.Users
		c.MenuRepo = mem.Menu
		c.ReviewRepo = mem.Reviews
		c.CartRepo = mem.Carts
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}

	// Initialize services
	c.TokenService = service.NewTokenService(cfg.TokenConfig)
	c.UserService = service.NewUserService(c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.MenuRepo, c.ReviewRepo)
	c.CartService = service.NewCartService(c.CartRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.Store, cfg.Storage)
	c.TokenHandler = handler.NewTokenHandler(c.TokenService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService)
	c.CartHandler = handler.NewCartHandler(c.CartService)

	return c, nil
}
