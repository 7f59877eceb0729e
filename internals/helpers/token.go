// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Cookie names carried over from the frontend contract: the admin token lives
// in "aToken", the student token in "sToken".
const (
	AdminTokenCookie   = "aToken"
	StudentTokenCookie = "sToken"
)

// GetRawToken returns the bearer token for the request, checking in order:
// 1) cookie "sToken"
// 2) cookie "aToken"
// 3) Authorization header "Bearer <token>"
func GetRawToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(StudentTokenCookie)); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Cookies(AdminTokenCookie)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
