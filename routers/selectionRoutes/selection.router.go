package selectionRoutes

import (
	selectionControllers "athletex/controllers/selection"
	"athletex/middleware"
	selectionValidators "athletex/validators/selection"

	"github.com/gofiber/fiber/v2"
)

func SetupSelectionRoutes(app *fiber.App) {
	app.Post("/selected", selectionValidators.SelectClass(), selectionControllers.SelectClass)
	app.Get("/dashboard/selected", middleware.JWTMiddleware, middleware.RequireSelf, selectionControllers.ListSelected)
	app.Delete("/dashboard/selected/:id", selectionControllers.DeleteSelected)
}
