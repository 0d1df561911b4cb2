package models

import "gorm.io/gorm"

// SelectedClass is a pending, unpaid reservation linking a user to a class.
// It carries no expiry; it is deleted when the payment for it completes or
// when the user removes it from their dashboard.
type SelectedClass struct {
	gorm.Model
	UserEmail      string  `json:"email"`
	ClassID        string  `json:"classId"` // copied from the posted class id
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price"`
}
