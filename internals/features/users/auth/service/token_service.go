// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"learnify_backend/internals/configs"
)

// Token validity is signature + expiry only; no refresh flow, no revocation.
const TokenTTL = 24 * time.Hour

// GenerateToken signs an HS256 access token carrying the user's id, role and
// email, expiring after TokenTTL.
func GenerateToken(id uuid.UUID, role, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    id.String(),
		"role":  role,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// cookieFlags picks the Secure/SameSite pair for auth cookies. Browsers drop
// SameSite=None cookies that are not Secure, so cross-site None is only used
// when SECURE_COOKIES is on; plain HTTP deployments fall back to Lax.
func cookieFlags() (secure bool, sameSite string) {
	if configs.SecureCookies() {
		return true, fiber.CookieSameSiteNoneMode
	}
	return false, fiber.CookieSameSiteLaxMode
}

// SetAuthCookie stores the token under the role-specific cookie name
// (aToken for admins, sToken for students).
func SetAuthCookie(c *fiber.Ctx, name, token string) {
	secure, sameSite := cookieFlags()
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenTTL),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
}

func ClearAuthCookie(c *fiber.Ctx, name string) {
	secure, sameSite := cookieFlags()
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
}
