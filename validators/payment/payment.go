package paymentValidator

import (
	"athletex/middleware"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateIntent validator middleware
func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

// CompletePayment validator middleware
func CompletePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string  `json:"email"`
			Amount          float64 `json:"amount"`
			ClassID         string  `json:"classId"`
			ClassName       string  `json:"className"`
			TransactionID   string  `json:"transactionId"`
			SelectedClassID uint    `json:"selectedClassId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.ClassID == "" {
			errors["classId"] = "Class ID is required!"
		}
		if reqData.SelectedClassID == 0 {
			errors["selectedClassId"] = "Selected class ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
