package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/chloegtg3005/moneyTrusted/internal/config"
	"github.com/chloegtg3005/moneyTrusted/internal/database"
	"github.com/chloegtg3005/moneyTrusted/internal/handlers"
	"github.com/chloegtg3005/moneyTrusted/internal/logger"
	"github.com/chloegtg3005/moneyTrusted/internal/middleware"
	"github.com/chloegtg3005/moneyTrusted/internal/services"
	"github.com/chloegtg3005/moneyTrusted/internal/validator"

	_ "github.com/chloegtg3005/moneyTrusted/internal/docs" // Import swagger docs
)

// @title           MoneyTrusted API
// @version         1.0
// @description     MoneyTrusted is an investment wallet: users top up a balance, buy fixed-cycle packages, and claim daily payouts that accrue lazily.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name X-Admin-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	walletService := services.NewWalletService(db, userService, appConfig.MinTopup, appConfig.MinWithdraw)
	investmentService := services.NewInvestmentService(db, catalogService, walletService)
	payoutService := services.NewPayoutService(db, walletService)
	adminService := services.NewAdminService(db, walletService)

	// Seed the catalog on an empty database
	if err := catalogService.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService, investmentService)
	walletHandler := handlers.NewWalletHandler(walletService, payoutService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Admin-Key"},
		AllowCredentials: false,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/products", productHandler.ListProducts)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/change-password", authHandler.ChangePassword)

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/payout-account", authHandler.SetPayoutAccount)

	// Investment routes
	protected.POST("/products/:id/buy", productHandler.BuyProduct)
	protected.GET("/investments", productHandler.ListInvestments)

	// Wallet routes
	wallet := protected.Group("/wallet")
	wallet.POST("/topup", walletHandler.Topup)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.GET("/history", walletHandler.History)
	wallet.POST("/claim", walletHandler.Claim)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware())
	admin.POST("/topups/:id/confirm", adminHandler.ConfirmTopup)
	admin.POST("/topups/:id/reject", adminHandler.RejectTopup)
	admin.POST("/withdrawals/:id/confirm", adminHandler.ConfirmWithdraw)
	admin.POST("/withdrawals/:id/reject", adminHandler.RejectWithdraw)

	log.Infof("Starting MoneyTrusted backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
