package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/routes"
	"github.com/example/morascent/internal/store"
)

func main() {
	cfg := config.Load()

	s, err := store.New(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("store.New error: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Mora Scent Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, s, cfg)

	if cfg.GeminiAPIKey == "" {
		log.Println("[Assistant] GEMINI_API_KEY not set, chat replies will degrade to the fallback message")
	}

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
