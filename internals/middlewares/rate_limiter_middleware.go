package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

func limitReached(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success":    false,
			"message":    message,
			"error_code": "RATE_LIMITED",
		})
	}
}

// Global limiter for ordinary endpoints
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          100,
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: limitReached("Too many requests. Please try again later."),
	})
}

// Login limiter (stricter)
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          5,
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: limitReached("Too many login attempts. Please wait a moment."),
	})
}

// Export limiter; file generation is the heaviest thing the panel does.
func ExportRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if id, ok := c.Locals(helpersAuth.LocalUserID).(string); ok && id != "" {
				return "export:" + id
			}
			return "export:" + c.IP()
		},
		LimitReached: limitReached("Too many exports. Please wait a minute."),
	})
}
