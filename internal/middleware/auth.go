package middleware

import (
	"tugasku/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// RequireAuth resolves the session cookie into a user ID. Handlers behind it
// can rely on c.Locals("userID") being an int. Requests without a bound user
// are rejected with 401 before reaching the handler. Saving the session here
// renews the cookie lifetime on every authenticated request.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			logger.ErrorLogger.Error("Session lookup failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		userID, ok := sess.Get("userId").(int)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		if err := sess.Save(); err != nil {
			logger.ErrorLogger.Error("Session renew failed", zap.Error(err))
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}
