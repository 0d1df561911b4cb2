package paymentRoutes

import (
	paymentControllers "athletex/controllers/payment"
	"athletex/middleware"
	"athletex/models"
	paymentValidators "athletex/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", paymentValidators.CreateIntent(), paymentControllers.CreateIntent)
	app.Post("/payment", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), paymentValidators.CompletePayment(), paymentControllers.CompletePayment)
	app.Get("/dashboard/enrolled", middleware.JWTMiddleware, middleware.RequireSelf, paymentControllers.ListEnrolled)
}
