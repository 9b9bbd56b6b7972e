package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the ray id.
const Header = "X-Ray-ID"

// New returns middleware that assigns every request a ray id.
//
// An id supplied by the caller is kept, so a frontend can correlate its own
// traces with backend logs; otherwise a fresh UUID is generated. The id is
// stored in locals under "ray_id" and echoed on the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
