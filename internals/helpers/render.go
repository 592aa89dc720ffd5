package helper

import "github.com/gofiber/fiber/v2"

// Render draws a page inside the main layout with title and pending flashes.
func Render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Flashes"] = PopFlashes(c)
	return c.Render(view, data)
}
