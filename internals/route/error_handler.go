package routes

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

var jsonPaths = map[string]bool{
	"/mark_attendance":    true,
	"/get_attendance":     true,
	"/generate_ai_report": true,
	"/export_report_pdf":  true,
}

// ErrorHandler answers JSON endpoints with the {success:false} envelope and
// everything else with the error page. A missing record surfaces as 404.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case apperror.IsNotFound(err):
		code = fiber.StatusNotFound
	}
	if code >= fiber.StatusInternalServerError {
		source := "internal"
		if apperror.IsStorage(err) {
			source = "storage"
		}
		log.Printf("[ERROR] reqid=%s %s %s %s: %v", helper.ReqID(c), c.Method(), c.Path(), source, err)
	}

	if jsonPaths[c.Path()] || strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return helper.JsonError(c, code, messageFor(code))
	}

	c.Status(code)
	if rerr := helper.Render(c, "error", messageFor(code), fiber.Map{
		"ErrorCode":    code,
		"ErrorMessage": messageFor(code),
	}); rerr != nil {
		return c.Status(code).SendString(messageFor(code))
	}
	return nil
}

func messageFor(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "الصفحة غير موجودة"
	case fiber.StatusUnauthorized:
		return "يجب تسجيل الدخول"
	case fiber.StatusMethodNotAllowed:
		return "الطريقة غير مسموحة"
	case fiber.StatusTooManyRequests:
		return "طلبات كثيرة جداً"
	default:
		if code >= fiber.StatusInternalServerError {
			return "حدث خطأ في الخادم"
		}
		return "طلب غير صالح"
	}
}
