package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/webmasterhq/webmaster-backend/internal/config"
	"github.com/webmasterhq/webmaster-backend/internal/database"
	"github.com/webmasterhq/webmaster-backend/internal/handlers"
	"github.com/webmasterhq/webmaster-backend/internal/metrics"
	"github.com/webmasterhq/webmaster-backend/internal/middleware"
	"github.com/webmasterhq/webmaster-backend/internal/routes"
	"github.com/webmasterhq/webmaster-backend/internal/services"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to PostgreSQL. A failure here is logged but not fatal:
	// the server still starts and write paths fail with 500 instead.
	log.Printf("Connecting to PostgreSQL...")
	db, err := database.Connect(cfg.PostgresDSN())
	if db == nil {
		log.Fatal("Failed to open PostgreSQL pool:", err)
	}
	if err != nil {
		log.Printf("⚠️  WARNING: PostgreSQL connection failed: %v", err)
	} else {
		if err := database.InitTables(db); err != nil {
			log.Printf("⚠️  WARNING: failed to initialize tables: %v", err)
		}
	}
	defer db.Close()

	if cfg.NotifierEnabled() {
		log.Println("✅ Telegram notifications enabled")
	} else {
		log.Println("Warning: Telegram credentials not found. Notifications will be skipped")
	}

	notifier := services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	h := handlers.New(store.NewPostgresStore(db), notifier, cfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestLogger)
	r.Use(metrics.Middleware)

	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /")
	log.Println("  GET  /admin")
	log.Println("  POST /api/submit-form")
	log.Println("  GET  /api/users")
	log.Println("  GET  /health")
	log.Println("  GET  /metrics")

	log.Printf("🚀 Webmaster backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
