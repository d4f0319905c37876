package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/config"
	"github.com/mostevr/cardstock/internal/app"
	"github.com/mostevr/cardstock/internal/domain"
	"github.com/mostevr/cardstock/internal/webserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the real router against a fresh in-memory database.
// The pool is capped at one connection so the memory database is shared by
// every request the test makes.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	application := app.NewApplication(config.LoadConfig(""))
	application.OverrideDB(db)
	webserver.Init(application)
	InitRouter()

	return webserver.Echo(), db
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doRawRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != message {
		t.Fatalf("message = %q, want %q", body["message"], message)
	}
}

func seedPlan(t *testing.T, db *gorm.DB, name string, price float64) domain.Plan {
	t.Helper()
	p := domain.Plan{Name: name, Price: price}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return p
}

func seedClient(t *testing.T, db *gorm.DB, name string, balance float64) domain.Client {
	t.Helper()
	cl := domain.Client{Name: name, Balance: balance}
	if err := db.Create(&cl).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return cl
}

func seedStock(t *testing.T, db *gorm.DB, planID int64, state string, code string) {
	t.Helper()
	s := domain.Stock{PlanID: planID, Code: code, State: state}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
}

func seedInvoice(t *testing.T, db *gorm.DB, clientID, planID int64, amount float64, createdAt time.Time) {
	t.Helper()
	inv := domain.Invoice{ClientID: clientID, PlanID: planID, Amount: amount, CreatedAt: createdAt}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
}
