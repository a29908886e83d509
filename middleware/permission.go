package middleware

import (
	"steakz/policy"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that rejects any actor whose role is not
// in the allowed set. The allowed set is declared per route at registration
// time; membership is a case-sensitive exact match against the role enum.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		if !policy.RoleAllowed(role, allowedRoles) {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}

		return c.Next()
	}
}
