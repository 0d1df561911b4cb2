package authValidator

import (
	"athletex/middleware"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IssueToken validator middleware. The payload is free-form apart from the
// email claim the verifier and guards key on.
func IssueToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := map[string]interface{}{}
		if err := c.BodyParser(&payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		email, _ := payload["email"].(string)
		if email == "" || !emailRe.MatchString(email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTokenPayload", payload)
		return c.Next()
	}
}
