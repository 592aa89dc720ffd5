package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// GlobalRateLimiter caps requests per client IP per minute. max <= 0 disables it.
func GlobalRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return max <= 0 || c.Path() == "/health"
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "❌ طلبات كثيرة جداً، حاول مرة أخرى بعد قليل.",
			})
		},
	})
}

// WriteRateLimiter is the stricter cap mounted on form and JSON writes.
func WriteRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "❌ عمليات حفظ كثيرة جداً، انتظر دقيقة ثم حاول مجدداً.",
			})
		},
	})
}
