package userRoutes

import (
	userControllers "athletex/controllers/userControllers"
	"athletex/middleware"
	"athletex/models"
	userValidators "athletex/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	// Registration is an open upsert; the instructor list is public catalog data.
	app.Put("/users", userValidators.UpsertUser(), userControllers.UpsertUser)
	app.Get("/instructors", userControllers.ListInstructors)

	// Role flags carry their own lightweight self-check inside the handler.
	app.Get("/user/role/:email", middleware.JWTMiddleware, userControllers.GetUserRole)

	// Admin surface
	app.Get("/dashboard/users", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.AdminListUsers)
	app.Patch("/role", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userValidators.SetRole(), userControllers.AdminSetRole)
}
