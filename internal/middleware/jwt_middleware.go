package middleware

import (
	"log"
	"strings"

	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired admits only requests carrying a valid bearer token. The
// resolved identity is stored on the context for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "A bearer token is required")
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			log.Printf("Rejected token: %v", err)
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
