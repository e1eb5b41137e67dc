package middleware

import (
	"strings"

	"Backend-Masons-Leads/src/utils"

	"github.com/gofiber/fiber/v2"
)

type TokenParser interface {
	Parse(tokenStr string) (*utils.AdminClaims, error)
}

// PhotoAccess admits a request carrying either the shared gallery password
// in ?password= or a Bearer token issued to a named admin. tokens may be nil
// when no JWT secret is configured.
func PhotoAccess(password string, tokens TokenParser) fiber.Handler {
	return photoAccess(password, tokens, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid password"})
	})
}

// PhotoDownloadAccess is PhotoAccess for binary routes: a denied request
// gets a bare 401 with no body.
func PhotoDownloadAccess(password string, tokens TokenParser) fiber.Handler {
	return photoAccess(password, tokens, func(c *fiber.Ctx) error {
		// Status only; the body stays empty.
		c.Status(fiber.StatusUnauthorized)
		return nil
	})
}

func photoAccess(password string, tokens TokenParser, deny fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if tokens != nil && strings.HasPrefix(authHeader, "Bearer ") {
			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err == nil {
				c.Locals("admin", claims.Admin)
				return c.Next()
			}
		}

		if utils.SecretEqual(password, c.Query("password")) {
			c.Locals("admin", "shared-password")
			return c.Next()
		}

		return deny(c)
	}
}
