package paymentController_test

import (
	"athletex/config"
	"athletex/database"
	"athletex/middleware"
	"athletex/models"
	paymentRoutes "athletex/routers/paymentRoutes"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		TokenTTLHours: 4,
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Class{}, &models.SelectedClass{}, &models.Payment{}))

	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM classes")
	db.Exec("DELETE FROM selected_classes")
	db.Exec("DELETE FROM payments")

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app)
	return app
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

func seedStudent(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&models.User{
		Name: "Test Student", Email: email, Role: models.RoleStudent,
	}).Error)
}

func TestCompletePaymentTransition(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	seedStudent(t, "rina@athletex.io")

	class := models.Class{
		Title:           "Yoga",
		InstructorName:  "Marta",
		InstructorEmail: "marta@athletex.io",
		Price:           49.99,
		Seats:           5,
		Enrolled:        10,
		Status:          models.ClassStatusApproved,
	}
	require.NoError(t, db.Create(&class).Error)

	selection := models.SelectedClass{
		UserEmail: "rina@athletex.io",
		ClassID:   class.ID,
		Title:     "Yoga",
		Price:     49.99,
	}
	require.NoError(t, db.Create(&selection).Error)

	body, _ := json.Marshal(map[string]interface{}{
		"email":           "rina@athletex.io",
		"amount":          49.99,
		"classId":         class.ID,
		"className":       "Yoga",
		"transactionId":   "pi_3NZk2v_test",
		"selectedClassId": selection.ID,
	})

	req := httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "rina@athletex.io"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// One seat moved from available to enrolled
	var updated models.Class
	require.NoError(t, db.First(&updated, "id = ?", class.ID).Error)
	assert.Equal(t, 4, updated.Seats)
	assert.Equal(t, 11, updated.Enrolled)

	// Exactly one immutable payment record
	var paymentCount int64
	db.Model(&models.Payment{}).Where("email = ?", "rina@athletex.io").Count(&paymentCount)
	assert.Equal(t, int64(1), paymentCount)

	var payment models.Payment
	require.NoError(t, db.First(&payment, "email = ?", "rina@athletex.io").Error)
	assert.Equal(t, "pi_3NZk2v_test", payment.TransactionID)
	assert.Equal(t, class.ID, payment.ClassID)

	// The pending selection is gone
	var selectionCount int64
	db.Model(&models.SelectedClass{}).Where("id = ?", selection.ID).Count(&selectionCount)
	assert.Equal(t, int64(0), selectionCount)

	// The response aggregates all three write outcomes
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Status bool                       `json:"status"`
		Data   map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Status)
	assert.Contains(t, envelope.Data, "insertResult")
	assert.Contains(t, envelope.Data, "updateResult")
	assert.Contains(t, envelope.Data, "deleteResult")
}

func TestCompletePaymentAccumulatesCounters(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	seedStudent(t, "rina@athletex.io")
	seedStudent(t, "tomas@athletex.io")

	class := models.Class{
		Title:    "Boxing",
		Seats:    5,
		Enrolled: 10,
		Status:   models.ClassStatusApproved,
	}
	require.NoError(t, db.Create(&class).Error)

	for i, email := range []string{"rina@athletex.io", "tomas@athletex.io"} {
		selection := models.SelectedClass{UserEmail: email, ClassID: class.ID, Title: "Boxing"}
		require.NoError(t, db.Create(&selection).Error)

		body, _ := json.Marshal(map[string]interface{}{
			"email":           email,
			"amount":          25.0,
			"classId":         class.ID,
			"className":       "Boxing",
			"transactionId":   fmt.Sprintf("pi_test_%d", i),
			"selectedClassId": selection.ID,
		})
		req := httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, email))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Both increments must land; the counter move is a single compound
	// UPDATE, never a read-modify-write
	var updated models.Class
	require.NoError(t, db.First(&updated, "id = ?", class.ID).Error)
	assert.Equal(t, 3, updated.Seats)
	assert.Equal(t, 12, updated.Enrolled)

	var paymentCount int64
	db.Model(&models.Payment{}).Where("class_id = ?", class.ID).Count(&paymentCount)
	assert.Equal(t, int64(2), paymentCount)
}

func TestCompletePaymentForAnotherEmailIsUnauthorized(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	seedStudent(t, "rina@athletex.io")

	class := models.Class{Title: "Yoga", Seats: 5, Enrolled: 10, Status: models.ClassStatusApproved}
	require.NoError(t, db.Create(&class).Error)

	body, _ := json.Marshal(map[string]interface{}{
		"email":           "victim@athletex.io",
		"amount":          49.99,
		"classId":         class.ID,
		"className":       "Yoga",
		"transactionId":   "pi_forged",
		"selectedClassId": 1,
	})
	req := httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "rina@athletex.io"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Nothing was written
	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)

	var updated models.Class
	require.NoError(t, db.First(&updated, "id = ?", class.ID).Error)
	assert.Equal(t, 5, updated.Seats)
	assert.Equal(t, 10, updated.Enrolled)
}

func TestCompletePaymentRequiresStudentRole(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.User{
		Name: "Marta", Email: "marta@athletex.io", Role: models.RoleInstructor,
	}).Error)

	body, _ := json.Marshal(map[string]interface{}{
		"email":           "marta@athletex.io",
		"amount":          49.99,
		"classId":         "some-class",
		"className":       "Yoga",
		"transactionId":   "pi_test",
		"selectedClassId": 1,
	})
	req := httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "marta@athletex.io"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListEnrolledReturnsOwnPayments(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	seedStudent(t, "rina@athletex.io")

	require.NoError(t, db.Create(&models.Payment{
		Email: "rina@athletex.io", Amount: 49.99, ClassID: "c1", ClassName: "Yoga", TransactionID: "pi_1",
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		Email: "rina@athletex.io", Amount: 25, ClassID: "c2", ClassName: "Boxing", TransactionID: "pi_2",
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		Email: "other@athletex.io", Amount: 10, ClassID: "c3", ClassName: "Swim", TransactionID: "pi_3",
	}).Error)

	req := httptest.NewRequest("GET", "/dashboard/enrolled?email=rina@athletex.io", nil)
	req.Header.Set("Authorization", bearerFor(t, "rina@athletex.io"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Status bool             `json:"status"`
		Data   []models.Payment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Len(t, envelope.Data, 2)
}
