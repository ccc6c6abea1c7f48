package controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/checkout"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/middleware"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/routes"
)

const testSecret = "test-secret"

// fakeCheckout stands in for Stripe. Sessions are keyed by session id;
// created sessions are recorded for assertions.
type fakeCheckout struct {
	sessions map[string]*checkout.Session
	created  []checkout.CreateSessionParams
	err      error
}

func (f *fakeCheckout) CreateSession(p checkout.CreateSessionParams) (*checkout.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	return &checkout.Session{
		ID:  "cs_test_1",
		URL: "https://checkout.example.com/pay/cs_test_1",
	}, nil
}

func (f *fakeCheckout) GetSession(id string) (*checkout.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("no such session")
	}
	return s, nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a named shared in-memory db keeps all pooled connections on the
	// same database for the lifetime of the test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Issue{},
		&model.Payment{},
		&model.User{},
		&model.StaffApplication{},
	); err != nil {
		t.Fatalf("could not migrate test db: %v", err)
	}

	return db
}

func newTestApp(t *testing.T, fc *fakeCheckout) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	auth := middleware.AuthRequired(testSecret)

	app := fiber.New()
	routes.RegisterUserRoutes(app, &controller.UserController{DB: db})
	routes.RegisterIssueRoutes(app, &controller.IssueController{DB: db})
	routes.RegisterPaymentRoutes(app, &controller.PaymentController{DB: db, Checkout: fc}, auth)
	routes.RegisterStaffRoutes(app, &controller.StaffController{DB: db}, auth)

	return app, db
}

func bearerToken(t *testing.T, email, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return "Bearer " + signed
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		js, _ := json.Marshal(body)
		reader = bytes.NewReader(js)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, url, authHeader string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", url, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request GET %s failed: %v", url, err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var decoded []map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}
