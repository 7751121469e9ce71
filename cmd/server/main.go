package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/afkcodes/storefront/internal"
	"github.com/afkcodes/storefront/internal/cart"
	"github.com/afkcodes/storefront/internal/catalog"
	"github.com/afkcodes/storefront/internal/checkout"
	"github.com/afkcodes/storefront/internal/handler/storefront"
	"github.com/afkcodes/storefront/internal/middleware"
	"github.com/afkcodes/storefront/internal/router"
	"github.com/afkcodes/storefront/internal/routes"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Connect to the local cart store
	logger.Info("Connecting to cart store...", "addr", cfg.Redis.Addr)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       int(cfg.Redis.DB),
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cart store ping failed: %w", err)
	}
	logger.Info("Cart store connection established")

	// Initialize the cart manager and restore any saved cart
	cartStore := cart.NewRedisStore(redisClient, cfg.Cart.StorageKey)
	cartManager := cart.NewManager(cartStore, logger)
	cartManager.Load(ctx)

	// Initialize the catalog client
	catalogCfg := catalog.DefaultConfig(cfg.Catalog.BaseURL)
	catalogCfg.Timeout = cfg.Catalog.Timeout
	catalogClient := catalog.NewClient(catalogCfg, logger)
	logger.Info("Catalog client initialized", "base_url", cfg.Catalog.BaseURL)

	// Initialize the simulated checkout service
	checkoutService := checkout.NewService(cartManager, logger, cfg.Checkout.ProcessingDelay)

	// Build route dependencies
	storefrontDeps := routes.StorefrontDeps{
		HomeHandler:     storefront.NewHomeHandler(catalogClient, logger),
		ProductHandler:  storefront.NewProductHandler(catalogClient, logger),
		SearchHandler:   storefront.NewSearchHandler(catalogClient, logger),
		CartHandler:     storefront.NewCartHandler(cartManager, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService, logger),
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("storefront")

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
		router.CORS([]string{"*"}),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
