package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"condominio/internal/handlers"
	"condominio/internal/logger"
	"condominio/internal/middleware"
	"condominio/internal/models"
	"condominio/internal/services"
	"condominio/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Condominium{},
		&models.Resident{},
		&models.PaymentType{},
		&models.ResidentPaymentType{},
		&models.Concepto{},
		&models.GastoTipo{},
		&models.GastoTipoConcepto{},
		&models.Payment{},
		&models.Gasto{},
		&models.FinancialSummary{},
		&models.Setting{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
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

	// Handlers
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

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

	residents := protected.Group("/residents")
	residents.GET("/:id", residentHandler.GetResident)
	residents.PUT("/:id", residentHandler.UpdateResident)
	residents.DELETE("/:id", residentHandler.DeleteResident)
	residents.GET("/:id/arrears", reportHandler.GetResidentArrears)
	residents.GET("/:id/statement", reportHandler.GetStatement)

	paymentTypes := protected.Group("/payment-types")
	paymentTypes.GET("/:id", paymentTypeHandler.GetPaymentType)
	paymentTypes.PUT("/:id", paymentTypeHandler.UpdatePaymentType)
	paymentTypes.DELETE("/:id", paymentTypeHandler.DeletePaymentType)
	paymentTypes.PUT("/:id/residents", paymentTypeHandler.SetAssignedResidents)
	paymentTypes.GET("/:id/residents", paymentTypeHandler.GetAssignedResidents)

	conceptos := protected.Group("/conceptos")
	conceptos.GET("/:id", conceptoHandler.GetConcepto)
	conceptos.PUT("/:id", conceptoHandler.UpdateConcepto)
	conceptos.DELETE("/:id", conceptoHandler.DeleteConcepto)

	gastoTipos := protected.Group("/gasto-tipos")
	gastoTipos.GET("/:id", gastoTipoHandler.GetGastoTipo)
	gastoTipos.PUT("/:id", gastoTipoHandler.UpdateGastoTipo)
	gastoTipos.DELETE("/:id", gastoTipoHandler.DeleteGastoTipo)
	gastoTipos.PUT("/:id/conceptos", gastoTipoHandler.SetAssignedConceptos)
	gastoTipos.GET("/:id/conceptos", gastoTipoHandler.GetAssignedConceptos)

	payments := protected.Group("/payments")
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.PUT("/:id", paymentHandler.UpdatePayment)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	gastos := protected.Group("/gastos")
	gastos.GET("/:id", gastoHandler.GetGasto)
	gastos.PUT("/:id", gastoHandler.UpdateGasto)
	gastos.DELETE("/:id", gastoHandler.DeleteGasto)

	settings := protected.Group("/settings")
	settings.GET("/:key", settingsHandler.GetSetting)
	settings.PUT("/:key", settingsHandler.SetSetting)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new administrator and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"Admin"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createCondominium creates a condominium and returns its ID.
func (app *testApp) createCondominium(t *testing.T, token, name string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"address":"Av. Reforma 100","default_monthly_fee":10000}`, name)
	rec := app.request("POST", "/api/v1/condominiums", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create condominium failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createResident creates a resident in a condominium and returns its ID.
func (app *testApp) createResident(t *testing.T, token string, condoID float64, name, unit string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"unit":%q}`, name, unit)
	rec := app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/residents", condoID), body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create resident failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createPaymentType creates a general fee type with a monthly amount and returns its ID.
func (app *testApp) createPaymentType(t *testing.T, token string, condoID float64, name string, amount int64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"general":true,"monthly_amount":%d}`, name, amount)
	rec := app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/payment-types", condoID), body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create payment type failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}
