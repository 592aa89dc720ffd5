// internals/middlewares/auth/admin_guard.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

// Paths reachable without credentials even when the guard is on.
var skipPaths = map[string]struct{}{
	"/health": {},
}

// AdminGuard protects every page with HTTP basic auth against one admin
// account whose password is stored as a bcrypt hash.
func AdminGuard(username, passwordHash string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "Halaqat Admin",
		Next: func(c *fiber.Ctx) bool {
			_, ok := skipPaths[c.Path()]
			return ok
		},
		Authorizer: func(user, pass string) bool {
			if user != username {
				return false
			}
			if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass)); err != nil {
				log.Printf("[WARN] AdminGuard: password salah untuk user %q", user)
				return false
			}
			return true
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `basic realm="Halaqat Admin"`)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		},
	})
}
