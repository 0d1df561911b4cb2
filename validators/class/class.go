package classValidator

import (
	"athletex/middleware"
	"athletex/models"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateClass validator middleware
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Class)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.InstructorEmail == "" || !emailRe.MatchString(reqData.InstructorEmail) {
			errors["instructorEmail"] = "Invalid instructor email!"
		}
		if reqData.Seats < 0 {
			errors["seats"] = "Seats must not be negative!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// StatusUpdate validator middleware, shared by approve and deny
func StatusUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID       string `json:"id"`
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == "" {
			errors["id"] = "Class ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatusUpdate", reqData)
		return c.Next()
	}
}
