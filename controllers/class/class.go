package classController

import (
	"athletex/database"
	"athletex/middleware"
	"athletex/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListClasses returns approved classes. Public. An optional ?email= query
// narrows the list to a single instructor's classes.
func ListClasses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("status = ?", models.ClassStatusApproved)

	if email := c.Query("email"); email != "" {
		db = db.Where("instructor_email = ?", email)
	}

	var classes []models.Class
	if err := db.Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
}

// CreateClass stores a new class offering. It enters the catalog as pending
// until an admin approves it.
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*models.Class)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData.Status = models.ClassStatusPending
	reqData.Enrolled = 0

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class created successfully.", fiber.Map{
		"insertedId": reqData.ID,
	})
}

// InstructorClasses returns every class owned by the requesting instructor,
// whatever its approval status. Instructor only.
func InstructorClasses(c *fiber.Ctx) error {
	email := c.Query("email")

	var classes []models.Class
	if err := database.Database.Db.
		Where("instructor_email = ?", email).
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully.", classes)
}

// ApproveClass marks a pending class as approved. Admin only.
func ApproveClass(c *fiber.Ctx) error {
	return updateClassStatus(c, models.ClassStatusApproved)
}

// DenyClass marks a pending class as denied, keeping any reviewer feedback.
// Admin only.
func DenyClass(c *fiber.Ctx) error {
	return updateClassStatus(c, models.ClassStatusDenied)
}

func updateClassStatus(c *fiber.Ctx, status string) error {
	reqData, ok := c.Locals("validatedStatusUpdate").(*struct {
		ID       string `json:"id"`
		Feedback string `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{"status": status}
	if reqData.Feedback != "" {
		updates["feedback"] = reqData.Feedback
	}

	result := database.Database.Db.Model(&models.Class{}).
		Where("id = ?", reqData.ID).
		Updates(updates)
	if result.Error != nil {
		log.Printf("Error updating class %s status: %v", reqData.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully.", fiber.Map{
		"modifiedCount": result.RowsAffected,
	})
}
