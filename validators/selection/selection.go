package selectionValidator

import (
	"athletex/middleware"

	"github.com/gofiber/fiber/v2"
)

// SelectClass validator middleware
func SelectClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID             string  `json:"_id"`
			Email          string  `json:"email"`
			Title          string  `json:"title"`
			Image          string  `json:"image"`
			InstructorName string  `json:"instructorName"`
			Price          float64 `json:"price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == "" {
			errors["_id"] = "Class ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelection", reqData)
		return c.Next()
	}
}
