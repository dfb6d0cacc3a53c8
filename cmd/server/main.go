package main

import (
	"database/sql"
	"net/http"

	"pharmacart-be/internal/cart"
	"pharmacart-be/internal/catalog"
	"pharmacart-be/internal/config"
	"pharmacart-be/internal/db"
	"pharmacart-be/internal/kvstore"
	"pharmacart-be/internal/logger"
	"pharmacart-be/internal/middleware"
	"pharmacart-be/internal/order"
	"pharmacart-be/internal/transport"
	"pharmacart-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Indirections for testing.
var (
	initDBFunc        = db.InitDB
	runMigrationsFunc = db.RunMigrations
	startServerFunc   = http.ListenAndServe
)

// newServer builds the full API router with all dependencies wired.
func newServer(cfg *config.Config, database *sql.DB) *chi.Mux {
	log := logger.L()

	kv := kvstore.NewRepository(database)

	catalogStore := catalog.NewStore()
	cartSvc := cart.NewService(cart.NewStore())
	archive := order.NewArchive(kv)
	checkoutSvc := order.NewCheckoutService(cartSvc, archive, cfg.ExchangeRate, cfg.CheckoutDelay)
	userSvc := user.NewService(user.NewRepository(), kv, cfg.JWTSecret)

	router := chi.NewRouter()
	router.Use(logger.RequestIDMiddleware)
	router.Use(logger.LoggingMiddleware)
	router.Use(middleware.RecoverMiddleware(log))
	router.Use(middleware.RateLimitMiddleware)
	router.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	transport.NewCatalogHandler(catalogStore, log).RegisterRoutes(router)
	transport.NewCartHandler(cartSvc, catalogStore, cfg.ExchangeRate, log).RegisterRoutes(router, middleware.RequireAuth)
	transport.NewOrderHandler(checkoutSvc, archive, log).RegisterRoutes(router, middleware.RequireAuth)
	transport.NewUserHandler(userSvc, log).RegisterRoutes(router, middleware.RequireAuth)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})

	return router
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := initDBFunc(cfg)
	defer database.Close()

	if err := runMigrationsFunc(database, log); err != nil {
		return err
	}

	router := newServer(cfg, database)

	log.Info("🚀 API server running", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("Server stopped", zap.Error(err))
	}
}
