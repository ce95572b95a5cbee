package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/config"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/handler"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/middleware"
	"github.com/amr-khaled0p/lazez2/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Register *handler.RegisterHandler
	Sale     *handler.SaleHandler
	Cart     *handler.CartHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager       *utils.JWTManager
	Cfg              *config.Config
	IdempotencyStore *middleware.IdempotencyStore
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerProtectedRoutes(protected, h, deps)

		// Admin routes (back-office only)
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())

		registerAdminRoutes(admin, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Storefront reads
	v1.GET("/menu", h.Catalog.List)
	v1.GET("/menu/:id", h.Catalog.Get)
	v1.GET("/settings", h.Settings.GetSettings)
	v1.GET("/branches", h.Settings.ListBranches)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Storefront cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:item_id", h.Cart.UpdateItem)
		cart.DELETE("/items/:item_id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
		// Checkout commits a sale, so retries must not double-charge
		cart.POST("/checkout", middleware.IdempotencyRequired(deps.IdempotencyStore), h.Cart.Checkout)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Menu management
	menu := admin.Group("/menu")
	{
		menu.POST("", h.Catalog.Create)
		menu.PUT("/:id", h.Catalog.Update)
		menu.DELETE("/:id", h.Catalog.Delete)
		menu.POST("/:id/stock", h.Catalog.AdjustStock)
		menu.POST("/:id/modifiers/:modifier_id/stock", h.Catalog.AdjustModifierStock)
	}

	// Cashier register
	register := admin.Group("/register")
	{
		register.POST("/select", h.Register.SelectItem)
		register.GET("/selection", h.Register.GetSelection)
		register.DELETE("/selection", h.Register.ClearSelection)
		register.POST("/selection/modifiers", h.Register.ToggleModifier)
		register.POST("/selection/exclusions", h.Register.ToggleExclusion)
		register.PUT("/selection/quantity", h.Register.SetQuantity)
		register.POST("/lines", h.Register.CommitLine)
		register.DELETE("/lines/:index", h.Register.RemoveLine)
		register.GET("/receipt", h.Register.GetReceipt)
		register.DELETE("/receipt", h.Register.ResetReceipt)
		// Finalize commits a sale, so retries must not double-charge
		register.POST("/finalize", middleware.IdempotencyRequired(deps.IdempotencyStore), h.Register.Finalize)
	}

	// Sales log and finance
	admin.GET("/sales", h.Sale.List)
	admin.GET("/sales/recent", h.Sale.Recent)
	admin.GET("/finance/summary", h.Sale.Summary)

	// Site settings
	admin.PUT("/settings", h.Settings.UpdateSettings)

	// Printer
	printerGroup := admin.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
