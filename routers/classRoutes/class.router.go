package classRoutes

import (
	classControllers "athletex/controllers/class"
	"athletex/middleware"
	"athletex/models"
	classValidators "athletex/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	app.Get("/classes", classControllers.ListClasses)
	app.Post("/new_class", middleware.JWTMiddleware, classValidators.CreateClass(), classControllers.CreateClass)

	app.Get("/dashboard/my_classes", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), classControllers.InstructorClasses)

	app.Patch("/approve_class", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classValidators.StatusUpdate(), classControllers.ApproveClass)
	app.Patch("/deny_class", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), classValidators.StatusUpdate(), classControllers.DenyClass)
}
