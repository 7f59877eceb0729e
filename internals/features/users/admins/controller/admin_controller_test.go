package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnify_backend/internals/configs"
	"learnify_backend/internals/features/users/admins/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AdminModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupApp(db *gorm.DB) *fiber.App {
	configs.JWTSecret = "unit-test-secret"
	ctrl := NewAdminController(db)

	app := fiber.New()
	app.Post("/api/admin/register", ctrl.Register)
	app.Post("/api/admin/login", ctrl.Login)
	app.Get("/api/admin/logout", ctrl.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000) // bcrypt is slow
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func adminCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "aToken" {
			return c
		}
	}
	return nil
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	app := setupApp(db)

	payload := fiber.Map{
		"admin_name":     "Root",
		"admin_email":    "root@example.com",
		"admin_password": "secret123",
	}

	resp := postJSON(t, app, "/api/admin/register", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", resp.StatusCode)
	}
	if data := decodeBody(t, resp)["data"].(map[string]any); data["token"] == "" {
		t.Error("no token issued on register")
	}
	if c := adminCookie(resp); c == nil || c.Value == "" {
		t.Error("aToken cookie not set on register")
	}

	// the duplicate must come back as a 400, never a 200 with an error body
	resp = postJSON(t, app, "/api/admin/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["message"] != "Email already exists" {
		t.Errorf("message = %v", body["message"])
	}

	var count int64
	db.Model(&model.AdminModel{}).Count(&count)
	if count != 1 {
		t.Errorf("admin rows = %d, want 1", count)
	}
}

func TestRegister_Validation(t *testing.T) {
	db := setupDB(t)
	app := setupApp(db)

	resp := postJSON(t, app, "/api/admin/register", fiber.Map{
		"admin_name":     "R", // too short
		"admin_email":    "not-an-email",
		"admin_password": "123", // too short
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["error_code"] != "VALIDATION_ERROR" {
		t.Errorf("error_code = %v", body["error_code"])
	}
}

func TestLogin(t *testing.T) {
	db := setupDB(t)
	app := setupApp(db)

	register := fiber.Map{
		"admin_name":     "Root",
		"admin_email":    "root@example.com",
		"admin_password": "secret123",
	}
	if resp := postJSON(t, app, "/api/admin/register", register); resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	t.Run("good credentials", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", fiber.Map{
			"admin_email":    "root@example.com",
			"admin_password": "secret123",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if c := adminCookie(resp); c == nil || c.Value == "" {
			t.Error("aToken cookie not set on login")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", fiber.Map{
			"admin_email":    "root@example.com",
			"admin_password": "wrong-password",
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Invalid credentials" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", fiber.Map{
			"admin_email":    "nobody@example.com",
			"admin_password": "secret123",
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Invalid credentials" {
			t.Errorf("message = %v", body["message"])
		}
	})
}

func TestLogout_ClearsCookie(t *testing.T) {
	db := setupDB(t)
	app := setupApp(db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/logout", nil))
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	c := adminCookie(resp)
	if c == nil {
		t.Fatal("no aToken cookie in logout response")
	}
	if c.Value != "" {
		t.Errorf("aToken still carries a value after logout: %q", c.Value)
	}
}
