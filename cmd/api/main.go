package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/splitcheck/splitcheck/docs"
	"github.com/splitcheck/splitcheck/internal/config"
	"github.com/splitcheck/splitcheck/internal/database"
	"github.com/splitcheck/splitcheck/internal/history"
	"github.com/splitcheck/splitcheck/internal/receipt"
	"github.com/splitcheck/splitcheck/internal/session"
	"github.com/splitcheck/splitcheck/internal/settlement"
	"github.com/splitcheck/splitcheck/internal/share"
	"github.com/splitcheck/splitcheck/pkg/logging"
	mw "github.com/splitcheck/splitcheck/pkg/middleware"
)

// @title        Split Check API
// @version      1.0
// @description  Receipt scanning, bill splitting and settlement backend
// @host         localhost:8080
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database successfully")

	// History feature (records every ingested scan)
	historyRepo := history.NewRepository(db)
	historyService := history.NewService(historyRepo)
	historyHandler := history.NewHandler(historyService)

	// Receipt feature
	receiptRepo := receipt.NewRepository(db)
	receiptService := receipt.NewService(receiptRepo, historyService)
	receiptHandler := receipt.NewHandler(receiptService)

	// Session feature (in-memory split sessions over stored receipts)
	sessionStore := session.NewStore()
	sessionService := session.NewService(sessionStore, receiptService)
	sessionHandler := session.NewHandler(sessionService)

	// Settlement feature
	settlementService := settlement.NewService(sessionStore)
	settlementHandler := settlement.NewHandler(settlementService)

	// Share feature
	shareService := share.NewService(sessionStore)
	shareHandler := share.NewHandler(shareService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.DeviceID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/receipts", receiptHandler.Routes())
		r.Mount("/sessions", sessionHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/share", shareHandler.Routes())
		r.Mount("/history", historyHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
