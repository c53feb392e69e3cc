package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/salesdb/internal/config"
	"github.com/localnerve/salesdb/internal/database"
	"github.com/localnerve/salesdb/internal/handlers"
	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/localnerve/salesdb/internal/middleware"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/localnerve/salesdb/internal/types"
	"github.com/sirupsen/logrus"

	_ "github.com/localnerve/salesdb/docs/api" // Swagger docs
)

// @title SalesDB API
// @version 1.0.0
// @description Relational data service for the sales-management app, with one-time migration from the legacy key-value store
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/salesdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	// Create any missing tables; a failure here is fatal because every
	// repository depends on the relational schema being in place.
	if err := database.EnsureSchema(db); err != nil {
		logrus.WithError(err).Fatal("Failed to ensure schema")
	}

	// One-time legacy import, before the API starts serving
	store, err := legacy.NewFileStore(cfg.LegacyStorePath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open legacy store")
	}
	if cfg.MigrateOnStart {
		result := services.MigrateFromLegacyStore(db, store)
		if !result.Success {
			logrus.WithField("error", result.Error).Fatal("Legacy migration failed")
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("salesdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Liveness route, outside /api
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	app.Get("/health", healthHandler.GetHealth)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	clientHandler := &handlers.ClientHandler{DB: db}
	api.Get("/clients", clientHandler.GetClients)
	api.Post("/clients", clientHandler.CreateClient)
	api.Put("/clients/:id", clientHandler.UpdateClient)
	api.Delete("/clients/:id", clientHandler.DeleteClient)

	productHandler := &handlers.ProductHandler{DB: db}
	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	industryHandler := &handlers.IndustryHandler{DB: db}
	api.Get("/industries", industryHandler.GetIndustries)
	api.Post("/industries", industryHandler.CreateIndustry)
	api.Put("/industries/:id", industryHandler.UpdateIndustry)
	api.Delete("/industries/:id", industryHandler.DeleteIndustry)

	orderHandler := &handlers.OrderHandler{DB: db}
	api.Get("/orders", orderHandler.GetOrders)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Put("/orders/:id", orderHandler.UpdateOrder)
	api.Delete("/orders/:id", orderHandler.DeleteOrder)

	configHandler := &handlers.ConfigurationHandler{DB: db}
	api.Get("/config", configHandler.GetConfigurations)
	api.Get("/config/:key", configHandler.GetConfiguration)
	api.Put("/config/:key", configHandler.SetConfiguration)
	api.Delete("/config/:key", configHandler.DeleteConfiguration)

	migrationHandler := &handlers.MigrationHandler{DB: db, Store: store}
	api.Get("/migration", migrationHandler.GetMigrationStatus)
	api.Post("/migration", migrationHandler.RunMigration)
	api.Delete("/migration", migrationHandler.ResetMigration)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logrus.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	logrus.WithField("port", cfg.Port).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}

	logrus.Info("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errType := ""

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errType = e.Type
	}

	body := fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	}
	if errType != "" {
		body["type"] = errType
	}

	return c.Status(code).JSON(body)
}
