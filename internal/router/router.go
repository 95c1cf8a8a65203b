package router

import (
	"time"

	"github.com/KakonDebnath/bistro-boss-server/internal/di"
	"github.com/KakonDebnath/bistro-boss-server/internal/middleware"
	"github.com/KakonDebnath/bistro-boss-server/pkg/logger"
	pkgmiddleware "github.com/KakonDebnath/bistro-boss-server/pkg/middleware"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// Options controls the optional parts of the middleware chain
type Options struct {
	Logger *logger.Logger
	// Tracing adds the OpenTelemetry gin middleware
	Tracing bool
	// ProtectRoleRoutes puts PATCH/DELETE /users/admin/:id behind the token and admin gates
	ProtectRoleRoutes bool
	// Idempotency enables X-Idempotency-Key replay when non-nil
	Idempotency    pkgmiddleware.RedisClient
	IdempotencyTTL time.Duration
}

// New builds the gin engine with the middleware chain and all routes
func New(c *di.Container, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(pkgmiddleware.RequestID())
	r.Use(pkgmiddleware.Logger(log))
	r.Use(pkgmiddleware.Recovery(log))
	r.Use(pkgmiddleware.CORS())
	if opts.Tracing {
		r.Use(telemetry.TracingMiddleware())
	}

	// Attached per route after the gates so rejected requests never reach it
	var idempotent gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if opts.Idempotency != nil {
		idemCfg := pkgmiddleware.DefaultIdempotencyConfig(opts.Idempotency)
		if opts.IdempotencyTTL > 0 {
			idemCfg.TTL = opts.IdempotencyTTL
		}
		idempotent = pkgmiddleware.Idempotency(idemCfg)
	}

	verifyJWT := middleware.VerifyJWT(c.TokenService)
	verifyAdmin := middleware.VerifyAdmin(c.UserService)

	r.GET("/", c.HealthHandler.Root)
	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	r.POST("/jwt", c.TokenHandler.Issue)

	users := r.Group("/users")
	{
		users.GET("", verifyJWT, verifyAdmin, c.UserHandler.List)
		users.POST("", idempotent, c.UserHandler.Create)
		users.GET("/admin/:email", verifyJWT, c.UserHandler.AdminStatus)

		roles := users.Group("/admin")
		if opts.ProtectRoleRoutes {
			roles.Use(verifyJWT, verifyAdmin)
		}
		roles.PATCH("/:id", idempotent, c.UserHandler.Promote)
		roles.DELETE("/:id", idempotent, c.UserHandler.Delete)
	}

	r.GET("/menu", c.CatalogHandler.Menu)
	r.GET("/review", c.CatalogHandler.Reviews)

	carts := r.Group("/carts")
	{
		carts.GET("", verifyJWT, c.CartHandler.List)
		carts.POST("", idempotent, c.CartHandler.Add)
		carts.DELETE("/:id", idempotent, c.CartHandler.Remove)
	}

	return r
}
