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

	"github.com/chloegtg3005/moneyTrusted/internal/config"
	"github.com/chloegtg3005/moneyTrusted/internal/handlers"
	"github.com/chloegtg3005/moneyTrusted/internal/logger"
	"github.com/chloegtg3005/moneyTrusted/internal/middleware"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/services"
	"github.com/chloegtg3005/moneyTrusted/internal/validator"
)

const testAdminKey = "test-admin-key"

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

	cfg, _ := config.Load()
	cfg.AdminKey = testAdminKey
	config.Set(cfg)
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
		&models.Product{},
		&models.Investment{},
		&models.Transaction{},
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
	catalogService := services.NewCatalogService(db)
	walletService := services.NewWalletService(db, userService, 100000, 100000)
	investmentService := services.NewInvestmentService(db, catalogService, walletService)
	payoutService := services.NewPayoutService(db, walletService)
	adminService := services.NewAdminService(db, walletService)

	if err := catalogService.SeedDefaults(); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService, investmentService)
	walletHandler := handlers.NewWalletHandler(walletService, payoutService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/products", productHandler.ListProducts)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/change-password", authHandler.ChangePassword)
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/payout-account", authHandler.SetPayoutAccount)

	protected.POST("/products/:id/buy", productHandler.BuyProduct)
	protected.GET("/investments", productHandler.ListInvestments)

	wallet := protected.Group("/wallet")
	wallet.POST("/topup", walletHandler.Topup)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.GET("/history", walletHandler.History)
	wallet.POST("/claim", walletHandler.Claim)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware())
	admin.POST("/topups/:id/confirm", adminHandler.ConfirmTopup)
	admin.POST("/topups/:id/reject", adminHandler.RejectTopup)
	admin.POST("/withdrawals/:id/confirm", adminHandler.ConfirmWithdraw)
	admin.POST("/withdrawals/:id/reject", adminHandler.RejectWithdraw)

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

// adminRequest makes a request carrying the admin key header.
func (app *testApp) adminRequest(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	req.Header.Set("X-Admin-Key", testAdminKey)
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

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, identifier, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"identifier":%q,"password":%q}`, identifier, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// topupAndConfirm funds a user through the full pending/confirm path.
func (app *testApp) topupAndConfirm(t *testing.T, token string, amount int64) {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%d}`, amount)
	rec := app.request("POST", "/api/v1/wallet/topup", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("topup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	entry := result["transaction"].(map[string]interface{})
	txID := entry["id"].(string)

	rec = app.adminRequest("POST", "/api/v1/admin/topups/"+txID+"/confirm")
	if rec.Code != http.StatusOK {
		t.Fatalf("topup confirmation failed: %d %s", rec.Code, rec.Body.String())
	}
}

// balance reads the user's current balance through the profile endpoint.
func (app *testApp) balance(t *testing.T, token string) int64 {
	t.Helper()
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return int64(user["balance"].(float64))
}
