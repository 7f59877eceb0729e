package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"learnify_backend/internals/configs"
	"learnify_backend/internals/constants"
	helpers "learnify_backend/internals/helpers"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	id := uuid.New()

	token, err := GenerateToken(id, constants.RoleStudent, "asha@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims["id"] != id.String() {
		t.Errorf("id claim = %v, want %s", claims["id"], id)
	}
	if claims["role"] != constants.RoleStudent {
		t.Errorf("role claim = %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token issued without exp claim")
	}
}

func cookieFromResponse(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func setCookieVia(t *testing.T) *http.Cookie {
	t.Helper()
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		SetAuthCookie(c, helpers.StudentTokenCookie, "tok")
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return cookieFromResponse(t, resp, helpers.StudentTokenCookie)
}

func TestSetAuthCookie_Flags(t *testing.T) {
	t.Run("plain HTTP defaults to Lax", func(t *testing.T) {
		t.Setenv("SECURE_COOKIES", "")
		c := setCookieVia(t)
		if c.Secure {
			t.Error("Secure set without SECURE_COOKIES")
		}
		if c.SameSite != http.SameSiteLaxMode {
			t.Errorf("SameSite = %v, want Lax", c.SameSite)
		}
		if !c.HttpOnly {
			t.Error("cookie is not HttpOnly")
		}
	})

	t.Run("secure deployments use None+Secure", func(t *testing.T) {
		t.Setenv("SECURE_COOKIES", "true")
		c := setCookieVia(t)
		if !c.Secure {
			t.Error("Secure not set")
		}
		if c.SameSite != http.SameSiteNoneMode {
			t.Errorf("SameSite = %v, want None", c.SameSite)
		}
	})
}
