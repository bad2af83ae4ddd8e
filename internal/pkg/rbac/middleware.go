package rbac

import (
	"casino-admin-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// ActionFor maps an HTTP method to the action it needs.
func ActionFor(method string) string {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return ActionRead
	}
	return ActionWrite
}

// Require guards a route group with resource permissions. It must run after
// serverutils.JwtMiddleware.
func (e *Enforcer) Require(resource string) fiber.Handler {
	return e.guard(resource, "")
}

// RequireAction pins the action, for POST routes that only compute.
func (e *Enforcer) RequireAction(resource, action string) fiber.Handler {
	return e.guard(resource, action)
}

func (e *Enforcer) guard(resource, fixed string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims := serverutils.CurrentAdmin(ctx)
		if claims == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
		}
		action := fixed
		if action == "" {
			action = ActionFor(ctx.Method())
		}
		if !e.Allowed(claims.RoleId, resource, action) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Missing permission "+Permission(resource, action)))
		}
		return ctx.Next()
	}
}
