package middleware

import (
	"skillforge/authz"
	"skillforge/database"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// LoadPrincipal loads the authenticated user's row and attaches an
// authz.Principal to the request context. Runs after JWTMiddleware;
// denies the request if the account no longer exists.
func LoadPrincipal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	c.Locals("principal", authz.Principal{ID: user.ID, Role: user.Role})
	return c.Next()
}

// RequireRoles returns a middleware that restricts a route to the
// given roles. Runs after LoadPrincipal.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals("principal").(authz.Principal)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// Principal retrieves the authz.Principal stored by LoadPrincipal.
func Principal(c *fiber.Ctx) (authz.Principal, bool) {
	principal, ok := c.Locals("principal").(authz.Principal)
	return principal, ok
}
