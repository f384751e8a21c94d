package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"smartstats/internal/analysis"
	"smartstats/internal/handlers"
	"smartstats/internal/logger"
	"smartstats/internal/middleware"
	"smartstats/internal/models"
	"smartstats/internal/services"
	"smartstats/internal/validator"
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
		&models.Dashboard{},
		&models.Chart{},
		&models.LoginAttempt{},
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

	tokens := middleware.NewTokenService("integration-secret", time.Hour)

	// Services
	userService := services.NewUserService(db, services.NewLoginAuditService(db))
	dashboardService := services.NewDashboardService(db)
	chartService := services.NewChartService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	chartHandler := handlers.NewChartHandler(chartService)
	generateHandler := handlers.NewGenerateHandler(analysis.NewSeededGenerator(1))

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(tokens.Middleware())

	dashboards := protected.Group("/dashboards")
	dashboards.GET("", dashboardHandler.GetUserDashboards)
	dashboards.POST("", dashboardHandler.CreateDashboard)
	dashboards.DELETE("/:id", dashboardHandler.DeleteDashboard)
	dashboards.GET("/:id/charts", chartHandler.GetDashboardCharts)
	dashboards.POST("/:id/charts", chartHandler.CreateChart)

	protected.DELETE("/charts/:id", chartHandler.DeleteChart)
	protected.POST("/generate-chart", generateHandler.GenerateChart)

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

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user through the API.
func (app *testApp) signupUser(t *testing.T, username, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	rec := app.request("POST", "/api/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
}

// loginUser logs in and returns the token and user ID.
func (app *testApp) loginUser(t *testing.T, username, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// createUserWithToken registers and logs in a user, returning the token.
func (app *testApp) createUserWithToken(t *testing.T, username string) string {
	t.Helper()
	app.signupUser(t, username, username+"@test.com", "password123")
	token, _ := app.loginUser(t, username, "password123")
	return token
}

// createDashboard creates a dashboard and returns its ID.
func (app *testApp) createDashboard(t *testing.T, token, name string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"description":"test dashboard"}`, name)
	rec := app.request("POST", "/api/dashboards", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createChart adds a chart to a dashboard and returns its ID.
func (app *testApp) createChart(t *testing.T, token string, dashboardID float64, title string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"chart_type":"bar","data":[{"name":"A","value":1}]}`, title)
	rec := app.request("POST", fmt.Sprintf("/api/dashboards/%.0f/charts", dashboardID), body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create chart failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}
