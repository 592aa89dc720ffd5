package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ReqID is the request id set by the request-id middleware.
func ReqID(c *fiber.Ctx) string {
	if v, ok := c.Locals("reqid").(string); ok {
		return v
	}
	return "-"
}
