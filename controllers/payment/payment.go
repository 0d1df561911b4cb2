package paymentController

import (
	"athletex/database"
	"athletex/middleware"
	"athletex/models"
	"athletex/utils"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateIntent asks the gateway for a payment intent over the posted price
// and returns the client secret the frontend confirms the charge with.
func CreateIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Gateway amounts are in the currency's smallest unit.
	amount := int64(math.Round(reqData.Price * 100))

	intent, err := utils.CreatePaymentIntent(amount, "usd")
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created.", fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// CompletePayment runs the enrollment transition after the gateway confirmed
// a charge: insert the payment record, move one seat from available to
// enrolled, then drop the pending selection.
//
// The three writes are independent and share no transaction: a failure after
// the payment insert leaves the record in place with no seat decrement or
// selection cleanup. The counter move itself is a single compound UPDATE, so
// concurrent payments against one class cannot lose an increment, though
// nothing stops the seat count from going below zero.
func CompletePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*struct {
		Email           string  `json:"email"`
		Amount          float64 `json:"amount"`
		ClassID         string  `json:"classId"`
		ClassName       string  `json:"className"`
		TransactionID   string  `json:"transactionId"`
		SelectedClassID uint    `json:"selectedClassId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The payer email rides in the body, so the self-check the role guard
	// applies to query emails happens here instead.
	if tokenEmail, _ := c.Locals("email").(string); reqData.Email != tokenEmail {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthenticated access!", nil)
	}

	db := database.Database.Db

	// Step 1: immutable payment record
	payment := models.Payment{
		Email:         reqData.Email,
		Amount:        reqData.Amount,
		ClassID:       reqData.ClassID,
		ClassName:     reqData.ClassName,
		TransactionID: reqData.TransactionID,
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error saving payment record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	// Step 2: move one seat, both counters in one UPDATE
	updateResult := db.Model(&models.Class{}).
		Where("id = ?", reqData.ClassID).
		UpdateColumns(map[string]interface{}{
			"enrolled": gorm.Expr("enrolled + 1"),
			"seats":    gorm.Expr("seats - 1"),
		})
	if updateResult.Error != nil {
		log.Printf("Error updating seat counters for class %s: %v", reqData.ClassID, updateResult.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment recorded but seat update failed!", nil)
	}

	// Step 3: drop the pending selection
	deleteResult := db.Unscoped().Delete(&models.SelectedClass{}, reqData.SelectedClassID)
	if deleteResult.Error != nil {
		log.Printf("Error deleting selected class %d: %v", reqData.SelectedClassID, deleteResult.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment recorded but selection cleanup failed!", nil)
	}

	// Confirmation email is best-effort and must not hold up the response.
	go func(email, className string) {
		var user models.User
		name := email
		if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err == nil && user.Name != "" {
			name = user.Name
		}
		if err := utils.SendEnrollmentEmail(email, name, className); err != nil {
			log.Printf("Failed to send enrollment email to %s: %v", email, err)
		}
	}(reqData.Email, reqData.ClassName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment completed successfully.", fiber.Map{
		"insertResult": fiber.Map{"insertedId": payment.ID},
		"updateResult": fiber.Map{"modifiedCount": updateResult.RowsAffected},
		"deleteResult": fiber.Map{"deletedCount": deleteResult.RowsAffected},
	})
}

// ListEnrolled returns the requesting student's completed payments, newest
// first. Each row is one paid seat.
func ListEnrolled(c *fiber.Ctx) error {
	email := c.Query("email")

	var payments []models.Payment
	if err := database.Database.Db.
		Where("email = ?", email).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", payments)
}
