package middleware

import (
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
)

// RestrictTo gates a route to the given roles. It must run after Protect;
// the check is a pure function of the already-resolved identity.
func RestrictTo(allowedRoles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "authorization context missing", nil)
		}

		if _, ok := allowed[user.Role]; !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "you do not have permission to perform this action", nil)
		}

		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return RestrictTo(models.RoleAdmin)
}
