package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/KapilPandit0408/gibots"
)

const accountIDKey = "accountID"

// RequireAuth builds the auth gate: a middleware that extracts the bearer
// token, verifies it through the handler and stores the resolved account id
// in the context for downstream handlers. On any failure it short-circuits
// with 401 and the protected handler never runs.
func RequireAuth(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": gibots.ErrMissingToken.Error(),
			})
		}

		accountID, err := handler.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals(accountIDKey, accountID)

		return c.Next()
	}
}

// AccountID returns the account id the auth gate attached to the request, or
// "" when the request did not pass through RequireAuth.
func AccountID(c fiber.Ctx) string {
	id, _ := c.Locals(accountIDKey).(string)
	return id
}

// extractToken extracts the bearer token from the Authorization header.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
