// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"learnify_backend/internals/configs"
	helpers "learnify_backend/internals/helpers"
)

// AuthRequired verifies the request token and checks the embedded role
// against the allowed set. The decoded identity is stored in Locals
// (user_id, userRole, user_email) for the handlers downstream.
func AuthRequired(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helpers.GetRawToken(c)
		if tokenString == "" {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		// MapClaims validation skips exp when the claim is absent; every token
		// we issue carries one, so its absence marks a forged token.
		if _, ok := claims["exp"]; !ok {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		role := extractRole(claims)
		if len(allowedRoles) > 0 && !roleAllowed(role, allowedRoles) {
			return helpers.JsonError(c, fiber.StatusForbidden, "Insufficient permissions")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}

		c.Locals("user_id", userID.String())
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
