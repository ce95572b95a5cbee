package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/application/service"
	"github.com/amr-khaled0p/lazez2/internal/config"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/repository"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/snapshot"
	"github.com/amr-khaled0p/lazez2/internal/infrastructure/state"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/handler"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/middleware"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/routes"
	"github.com/amr-khaled0p/lazez2/pkg/oauth"
	"github.com/amr-khaled0p/lazez2/pkg/printer"
	"github.com/amr-khaled0p/lazez2/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the snapshot store
	var snapshots snapshot.Store
	var err error
	switch cfg.Snapshot.Driver {
	case "postgres":
		snapshots, err = snapshot.NewPostgresStore(cfg.Database.DSN())
	default:
		snapshots, err = snapshot.NewFileStore(cfg.Snapshot.Path)
	}
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}

	// Seed the first admin account for an empty snapshot
	adminHash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	// Load state, seeding the default menu when no snapshot exists
	store, err := state.New(snapshots, state.Seed(cfg.Admin.Email, cfg.Admin.Name, adminHash))
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	userRepo := repository.NewUserRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.FromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	catalogService := service.NewCatalogService(catalogRepo)
	saleService := service.NewSaleService(saleRepo, thermalPrinter, cfg.Printer.Width, cfg.App.Name)
	registerService := service.NewRegisterService(catalogRepo, saleService)
	cartService := service.NewCartService(catalogRepo, settingsRepo, userRepo, saleService)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Register: handler.NewRegisterHandler(registerService),
		Sale:     handler.NewSaleHandler(saleService),
		Cart:     handler.NewCartHandler(cartService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(thermalPrinter, cfg.Printer.Type, cfg.Printer.Width),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:       jwtManager,
		Cfg:              cfg,
		IdempotencyStore: middleware.NewIdempotencyStore(),
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
