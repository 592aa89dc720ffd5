package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	flashCookie = "halaqat_flash"
	flashTTL    = 5 * time.Minute
	localFlash  = "flasher"
	localQueued = "flash_queued"
)

type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

type flashClaims struct {
	Messages []Flash `json:"msgs"`
	jwt.RegisteredClaims
}

// Flasher keeps one-shot messages in an HS256-signed cookie so they survive
// the redirect that follows a form post.
type Flasher struct {
	secret []byte
	now    func() time.Time
}

func NewFlasher(secret string) *Flasher {
	return &Flasher{secret: []byte(secret), now: time.Now}
}

func (f *Flasher) read(c *fiber.Ctx) []Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	claims := &flashClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return f.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil
	}
	return claims.Messages
}

// queued holds what this request added, and whether the incoming cookie was
// already consumed by a render.
type queued struct {
	msgs     []Flash
	consumed bool
}

func queuedOf(c *fiber.Ctx) *queued {
	q, ok := c.Locals(localQueued).(*queued)
	if !ok {
		q = &queued{}
		c.Locals(localQueued, q)
	}
	return q
}

// Add queues a message. A render later in the same request shows it;
// otherwise the cookie carries it to the next page.
func (f *Flasher) Add(c *fiber.Ctx, category, message string) {
	q := queuedOf(c)
	q.msgs = append(q.msgs, Flash{Category: category, Message: message})

	var msgs []Flash
	if !q.consumed {
		msgs = f.read(c)
	}
	msgs = append(msgs, q.msgs...)
	now := f.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
		},
	})
	signed, err := tok.SignedString(f.secret)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    signed,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  now.Add(flashTTL),
	})
}

// Pop returns the incoming messages plus those queued during this request,
// then clears the cookie so none of them is shown twice.
func (f *Flasher) Pop(c *fiber.Ctx) []Flash {
	q := queuedOf(c)
	var msgs []Flash
	if !q.consumed {
		msgs = f.read(c)
		q.consumed = true
	}
	msgs = append(msgs, q.msgs...)
	q.msgs = nil
	if len(msgs) > 0 {
		c.Cookie(&fiber.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  f.now().Add(-time.Hour),
		})
	}
	return msgs
}

func (f *Flasher) Install() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localFlash, f)
		return c.Next()
	}
}

func flasherOf(c *fiber.Ctx) *Flasher {
	f, _ := c.Locals(localFlash).(*Flasher)
	return f
}

// SetFlash queues a message for the next rendered page. No-op without a Flasher.
func SetFlash(c *fiber.Ctx, category, message string) {
	if f := flasherOf(c); f != nil {
		f.Add(c, category, message)
	}
}

func PopFlashes(c *fiber.Ctx) []Flash {
	if f := flasherOf(c); f != nil {
		return f.Pop(c)
	}
	return nil
}

// RedirectWithFlash is the post/redirect/get tail used by every form handler.
func RedirectWithFlash(c *fiber.Ctx, to, category, message string) error {
	SetFlash(c, category, message)
	return c.Redirect(to, fiber.StatusFound)
}
