package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SushanthKalagi/EcommerceApplication/internal/handler"
	"github.com/SushanthKalagi/EcommerceApplication/internal/model"
	"github.com/SushanthKalagi/EcommerceApplication/internal/repository"
	"github.com/SushanthKalagi/EcommerceApplication/internal/service"
	"github.com/SushanthKalagi/EcommerceApplication/internal/ws"
	"github.com/SushanthKalagi/EcommerceApplication/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	catalogService := service.NewCatalogService(productRepo, wsHub)
	productHandler := handler.NewProductHandler(catalogService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Ecommerce Catalog v1.0",
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	products := api.Group("/products")
	products.Get("/categories", productHandler.Categories) // before /:id
	products.Get("/", productHandler.Search)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
