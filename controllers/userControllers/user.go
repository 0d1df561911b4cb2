package userController

import (
	"athletex/database"
	"athletex/middleware"
	"athletex/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertUser creates or updates a user keyed by email. Repeated calls with
// the same email overwrite the profile fields instead of duplicating the row.
func UpsertUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.User
	err := db.Where("email = ?", reqData.Email).First(&existing).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Error looking up user %s: %v", reqData.Email, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
		}

		if err := db.Create(reqData).Error; err != nil {
			log.Printf("Error saving user to database: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered successfully.", fiber.Map{
			"id":      reqData.ID,
			"created": true,
		})
	}

	// Overwrite profile fields; the role is only ever changed via PATCH /role.
	existing.Name = reqData.Name
	existing.Photo = reqData.Photo
	existing.Gender = reqData.Gender
	existing.Phone = reqData.Phone
	existing.Address = reqData.Address

	if err := db.Save(&existing).Error; err != nil {
		log.Printf("Error updating user %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", fiber.Map{
		"id":      existing.ID,
		"created": false,
	})
}

// GetUserRole reports the three role flags for an email. The check is a
// lightweight self-check: asking about someone else's email, or an email with
// no user record, just yields all-false flags rather than an error.
func GetUserRole(c *fiber.Ctx) error {
	requestedEmail := c.Params("email")
	tokenEmail, _ := c.Locals("email").(string)

	flags := fiber.Map{
		"student":    false,
		"instructor": false,
		"admin":      false,
	}

	if requestedEmail == "" || requestedEmail != tokenEmail {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role fetched.", flags)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", requestedEmail).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role fetched.", flags)
	}

	flags["student"] = user.Role == models.RoleStudent
	flags["instructor"] = user.Role == models.RoleInstructor
	flags["admin"] = user.Role == models.RoleAdmin

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role fetched.", flags)
}

// ListInstructors returns every user holding the instructor role. Public.
func ListInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleInstructor).Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully.", instructors)
}

// AdminListUsers returns all users. Admin only.
func AdminListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// AdminSetRole assigns a role to a user by id. Admin only. The change is
// visible to the guards on the user's very next request since role lookups
// are never cached.
func AdminSetRole(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRoleUpdate").(*struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", reqData.ID).
		Update("role", reqData.Role)
	if result.Error != nil {
		log.Printf("Error updating role for user %d: %v", reqData.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully.", fiber.Map{
		"modifiedCount": result.RowsAffected,
	})
}
