package selectionController

import (
	"athletex/database"
	"athletex/middleware"
	"athletex/models"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SelectClass records a pending reservation for a class. The posted body is
// the class object as the frontend holds it; its "_id" becomes the
// selection's classId so the original class id is not duplicated into the
// new record's own key. No capacity check happens here and the reservation
// never expires.
func SelectClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSelection").(*struct {
		ID             string  `json:"_id"`
		Email          string  `json:"email"`
		Title          string  `json:"title"`
		Image          string  `json:"image"`
		InstructorName string  `json:"instructorName"`
		Price          float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	selection := models.SelectedClass{
		UserEmail:      reqData.Email,
		ClassID:        reqData.ID,
		Title:          reqData.Title,
		Image:          reqData.Image,
		InstructorName: reqData.InstructorName,
		Price:          reqData.Price,
	}

	if err := database.Database.Db.Create(&selection).Error; err != nil {
		log.Printf("Error saving selected class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to select class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class selected successfully.", fiber.Map{
		"insertedId": selection.ID,
	})
}

// ListSelected returns the requesting student's pending selections.
func ListSelected(c *fiber.Ctx) error {
	email := c.Query("email")

	var selections []models.SelectedClass
	if err := database.Database.Db.
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&selections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selected classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected classes fetched successfully.", selections)
}

// DeleteSelected removes a pending selection by its id.
func DeleteSelected(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid selection ID!", nil)
	}

	result := database.Database.Db.Unscoped().Delete(&models.SelectedClass{}, id)
	if result.Error != nil {
		log.Printf("Error deleting selected class %d: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete selected class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected class deleted successfully.", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}
