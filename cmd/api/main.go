package main

import (
	"fmt"
	"net/http"
	"os"

	"condominio/internal/config"
	"condominio/internal/database"
	"condominio/internal/handlers"
	"condominio/internal/logger"
	"condominio/internal/middleware"
	"condominio/internal/services"
	"condominio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "condominio/internal/docs" // Import swagger docs
)

// @title           Condominio API
// @version         1.0
// @description     Condominio is a condominium administration service for tracking residents, monthly fee payments, expenses, and arrears.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Register custom request validators
	validator.Register()

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
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	condominiumService := services.NewCondominiumService(db)
	residentService := services.NewResidentService(db)
	paymentTypeService := services.NewPaymentTypeService(db)
	conceptoService := services.NewConceptoService(db)
	gastoTipoService := services.NewGastoTipoService(db)
	paymentService := services.NewPaymentService(db)
	gastoService := services.NewGastoService(db)
	debtService := services.NewDebtService(db)
	summaryService := services.NewSummaryService(db)
	statementService := services.NewStatementService(db)
	settingsService := services.NewSettingsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	condominiumHandler := handlers.NewCondominiumHandler(condominiumService, auditService)
	residentHandler := handlers.NewResidentHandler(residentService, auditService)
	paymentTypeHandler := handlers.NewPaymentTypeHandler(paymentTypeService, auditService)
	conceptoHandler := handlers.NewConceptoHandler(conceptoService, auditService)
	gastoTipoHandler := handlers.NewGastoTipoHandler(gastoTipoService, auditService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, auditService)
	gastoHandler := handlers.NewGastoHandler(gastoService, auditService)
	reportHandler := handlers.NewReportHandler(debtService, summaryService, statementService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

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
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Condominium routes and condominium-scoped collections
	condominiums := protected.Group("/condominiums")
	condominiums.POST("", condominiumHandler.CreateCondominium)
	condominiums.GET("", condominiumHandler.GetCondominiums)
	condominiums.GET("/:condominium_id", condominiumHandler.GetCondominium)
	condominiums.PUT("/:condominium_id", condominiumHandler.UpdateCondominium)
	condominiums.DELETE("/:condominium_id", condominiumHandler.DeleteCondominium)
	condominiums.POST("/:condominium_id/residents", residentHandler.CreateResident)
	condominiums.GET("/:condominium_id/residents", residentHandler.GetResidents)
	condominiums.POST("/:condominium_id/payment-types", paymentTypeHandler.CreatePaymentType)
	condominiums.GET("/:condominium_id/payment-types", paymentTypeHandler.GetPaymentTypes)
	condominiums.POST("/:condominium_id/conceptos", conceptoHandler.CreateConcepto)
	condominiums.GET("/:condominium_id/conceptos", conceptoHandler.GetConceptos)
	condominiums.POST("/:condominium_id/gasto-tipos", gastoTipoHandler.CreateGastoTipo)
	condominiums.GET("/:condominium_id/gasto-tipos", gastoTipoHandler.GetGastoTipos)
	condominiums.POST("/:condominium_id/payments", paymentHandler.CreatePayment)
	condominiums.GET("/:condominium_id/payments", paymentHandler.GetPayments)
	condominiums.POST("/:condominium_id/gastos", gastoHandler.CreateGasto)
	condominiums.GET("/:condominium_id/gastos", gastoHandler.GetGastos)
	condominiums.GET("/:condominium_id/debts", reportHandler.GetDebtOverview)
	condominiums.GET("/:condominium_id/summary", reportHandler.GetYearlySummary)

	// Resident routes
	residents := protected.Group("/residents")
	residents.GET("/:id", residentHandler.GetResident)
	residents.PUT("/:id", residentHandler.UpdateResident)
	residents.DELETE("/:id", residentHandler.DeleteResident)
	residents.GET("/:id/arrears", reportHandler.GetResidentArrears)
	residents.GET("/:id/statement", reportHandler.GetStatement)

	// Payment type routes
	paymentTypes := protected.Group("/payment-types")
	paymentTypes.GET("/:id", paymentTypeHandler.GetPaymentType)
	paymentTypes.PUT("/:id", paymentTypeHandler.UpdatePaymentType)
	paymentTypes.DELETE("/:id", paymentTypeHandler.DeletePaymentType)
	paymentTypes.PUT("/:id/residents", paymentTypeHandler.SetAssignedResidents)
	paymentTypes.GET("/:id/residents", paymentTypeHandler.GetAssignedResidents)

	// Concepto routes
	conceptos := protected.Group("/conceptos")
	conceptos.GET("/:id", conceptoHandler.GetConcepto)
	conceptos.PUT("/:id", conceptoHandler.UpdateConcepto)
	conceptos.DELETE("/:id", conceptoHandler.DeleteConcepto)

	// Gasto tipo routes
	gastoTipos := protected.Group("/gasto-tipos")
	gastoTipos.GET("/:id", gastoTipoHandler.GetGastoTipo)
	gastoTipos.PUT("/:id", gastoTipoHandler.UpdateGastoTipo)
	gastoTipos.DELETE("/:id", gastoTipoHandler.DeleteGastoTipo)
	gastoTipos.PUT("/:id/conceptos", gastoTipoHandler.SetAssignedConceptos)
	gastoTipos.GET("/:id/conceptos", gastoTipoHandler.GetAssignedConceptos)

	// Payment routes
	payments := protected.Group("/payments")
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.PUT("/:id", paymentHandler.UpdatePayment)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	// Gasto routes
	gastos := protected.Group("/gastos")
	gastos.GET("/:id", gastoHandler.GetGasto)
	gastos.PUT("/:id", gastoHandler.UpdateGasto)
	gastos.DELETE("/:id", gastoHandler.DeleteGasto)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("/:key", settingsHandler.GetSetting)
	settings.PUT("/:key", settingsHandler.SetSetting)

	log.Infof("Starting Condominio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
