package userValidator

import (
	"athletex/middleware"
	"athletex/models"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UpsertUser validator middleware
func UpsertUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.User)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// SetRole validator middleware
func SetRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "User ID is required!"
		}

		// Exact literals; "Instructor" is capitalized on purpose.
		switch reqData.Role {
		case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
		default:
			errors["role"] = "Role must be one of student, Instructor, admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoleUpdate", reqData)
		return c.Next()
	}
}
