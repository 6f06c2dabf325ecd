package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(authService *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("rol", claims.Rol)
		c.Locals("user", &UserInfo{
			ID:        claims.UserID,
			Email:     claims.Email,
			Nombre:    claims.Nombre,
			Iniciales: claims.Iniciales,
			Rol:       claims.Rol,
		})

		return c.Next()
	}
}

// RequireRol creates a middleware that checks if user has one of the
// required roles. Admin always passes.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRol := c.Locals("rol")
		if userRol == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		rolStr := userRol.(string)
		if rolStr == "Admin" {
			return c.Next()
		}
		for _, rol := range roles {
			if rolStr == rol {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

// Actor returns the audit actor for the request, falling back to "sistema"
// on unauthenticated paths.
func Actor(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok && email != "" {
		return email
	}
	return "sistema"
}
