package authRoutes

import (
	authControllers "athletex/controllers/auth"
	authValidators "athletex/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidators.IssueToken(), authControllers.IssueToken)
}
