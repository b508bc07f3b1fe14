package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkart/catalog-service/internal/config"
	"github.com/shopkart/catalog-service/internal/handlers"
	"github.com/shopkart/catalog-service/internal/middleware"
	"github.com/shopkart/catalog-service/internal/repository"
	"github.com/shopkart/catalog-service/internal/repository/memory"
	"github.com/shopkart/catalog-service/internal/repository/mongodb"
	"github.com/shopkart/catalog-service/internal/service"
	"github.com/shopkart/catalog-service/pkg/logger"
)

// version is the build version, overridable at link time with
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting catalog api server",
		"version", version,
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store_backend", cfg.Store.Backend,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories. The mongo client is opened here and
	// disconnected during shutdown.
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
		mongoClient *mongo.Client
	)

	switch cfg.Store.Backend {
	case config.StoreBackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err = mongodb.Connect(ctx, cfg.Store.MongoURI)
		cancel()
		if err != nil {
			log.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		db := mongoClient.Database(cfg.Store.MongoDatabase)
		productRepo = mongodb.NewProductRepository(db)
		orderRepo = mongodb.NewOrderRepository(db)
		log.Info("connected to mongodb", "database", cfg.Store.MongoDatabase)
	default:
		productRepo = memory.NewProductRepository()
		orderRepo = memory.NewOrderRepository()
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, version)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Product endpoints
	r.Post("/products", productHandler.CreateProduct)
	r.Get("/products", productHandler.ListProducts)

	// Order endpoints
	r.Post("/orders", orderHandler.CreateOrder)
	r.Get("/orders/{userId}", orderHandler.ListUserOrders)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Error("failed to disconnect from mongodb", "error", err)
		}
	}

	log.Info("server stopped gracefully")
}
