package middleware

import (
	"athletex/database"
	"athletex/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireSelf only enforces that the caller asks for their own data: the
// ?email= query (or :email param) must match the token identity. Runs after
// JWTMiddleware. Used by dashboard reads that any signed-in user may make
// about themselves, whatever their role.
func RequireSelf(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthenticated access!", nil)
	}

	requestedEmail := c.Query("email")
	if requestedEmail == "" {
		requestedEmail = c.Params("email")
	}

	if requestedEmail != email {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthenticated access!", nil)
	}

	return c.Next()
}

// RequireRole returns a middleware that checks the caller is acting on their
// own account and holds the required role. Runs after JWTMiddleware.
//
// The requested email comes from the ?email= query or the :email route param.
// A mismatch against the token identity is 401 regardless of role, so an
// authenticated user can never read another user's dashboard. The role lookup
// is a fresh read on every request; role changes apply on the next call.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthenticated access!", nil)
		}

		// Routes carrying the target email in the body (e.g. the payment
		// handler) re-check it against the token themselves; here the guard
		// then only enforces the role.
		requestedEmail := c.Query("email")
		if requestedEmail == "" {
			requestedEmail = c.Params("email")
		}
		if requestedEmail == "" {
			requestedEmail = email
		}

		if requestedEmail != email {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthenticated access!", nil)
		}

		var user models.User
		err := database.Database.Db.Where("email = ?", email).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden access!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking role!", nil)
		}

		// Exact string comparison; see the role literals in models.
		if user.Role != requiredRole {
			return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden access!", nil)
		}

		c.Locals("role", user.Role)
		return c.Next()
	}
}
