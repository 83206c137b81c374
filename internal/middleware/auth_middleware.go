package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/service"
	"github.com/rizkyfm/job-board-api/internal/util"
)

const principalKey = "principal"

// Auth requires a valid bearer token and stores the decoded principal in the
// request locals.
func Auth(tokens service.TokenServiceInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return util.ErrorResponse(c, util.NewUnauthenticated("Not authorized, no token"))
		}
		p, err := tokens.Verify(raw)
		if err != nil {
			return util.ErrorResponse(c, util.NewUnauthenticated("Not authorized, token failed"))
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

// OptionalAuth decodes a bearer token when present but lets anonymous
// requests through.
func OptionalAuth(tokens service.TokenServiceInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if p, err := tokens.Verify(raw); err == nil {
				c.Locals(principalKey, p)
			}
		}
		return c.Next()
	}
}

// RequireRole rejects authenticated principals of the wrong kind.
func RequireRole(role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Principal(c).Role != role {
			return util.ErrorResponse(c, util.NewForbidden("Not authorized for this resource"))
		}
		return c.Next()
	}
}

// Principal returns the authenticated actor for the request, or the anonymous
// principal when unauthenticated.
func Principal(c *fiber.Ctx) model.Principal {
	if p, ok := c.Locals(principalKey).(model.Principal); ok {
		return p
	}
	return model.Anonymous()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
