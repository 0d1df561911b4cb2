package models

import "gorm.io/gorm"

// Role literals stored on User.Role and compared by the role guard.
// "Instructor" is capitalized while the other two are lowercase; clients
// match on these exact strings, so the casing must not be normalized.
const (
	RoleStudent    = "student"
	RoleInstructor = "Instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `gorm:"unique;not null" json:"email"`
	Photo   string `json:"photo"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `gorm:"default:''" json:"role"` // unset until an admin assigns one
}
