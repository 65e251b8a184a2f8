package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tienda/internal/config"
	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/broadcast"
	"tienda/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Repositories ---
	productRepo, cartRepo, userRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Change notification ---
	// The in-process hub always runs; the RabbitMQ bridge is attached only
	// when a broker URL is configured. The stores work the same either way.
	hub := broadcast.NewHub()
	notifier := broadcast.Notifier(hub)

	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		notifier = broadcast.Multi{hub, mqClient}
	} else {
		log.Println("RABBITMQ_URL not set. Catalog events stay in-process only.")
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, notifier)
	cartService := services.NewCartService(cartRepo, productRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	authHandler := handlers.NewAuthHandler(authService)
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")

	// Authentication routes (public)
	authHandler.RegisterRoutes(api)

	// Product reads are public, mutations require a valid JWT
	productHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// Cart routes (public, matching the original storefront contract)
	cartHandler.RegisterRoutes(api)

	// Realtime product feed
	realtimeHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"driver":  cfg.StorageDriver,
			"viewers": hub.Len(),
		})
	})

	// --- Mirror broker events into the process log ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeProductEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildRepositories wires the storage backend named by STORAGE_DRIVER. The
// file driver is the default; sqlite and postgres reuse the same repository
// contracts through GORM.
func buildRepositories(cfg config.Config) (repositories.ProductRepository, repositories.CartRepository, repositories.UserRepository, error) {
	switch cfg.StorageDriver {
	case "file":
		for _, path := range []string{cfg.ProductsFile, cfg.CartsFile, cfg.UsersFile} {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, nil, fmt.Errorf("failed to create data directory for %s: %w", path, err)
			}
		}
		return repositories.NewFileProductRepository(cfg.ProductsFile),
			repositories.NewFileCartRepository(cfg.CartsFile),
			repositories.NewFileUserRepository(cfg.UsersFile),
			nil

	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if cfg.StorageDriver == "sqlite" {
			dsn := cfg.DatabaseDSN
			if dsn == "" {
				dsn = "tienda.db"
			}
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(cfg.DatabaseDSN)
		}

		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.User{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewGORMProductRepository(db),
			repositories.NewGORMCartRepository(db),
			repositories.NewGORMUserRepository(db),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
