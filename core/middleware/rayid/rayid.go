package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header echoing the request id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the request id.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request a ray id.
// An incoming X-Ray-ID header is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromCtx returns the ray id of the request, or "".
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
