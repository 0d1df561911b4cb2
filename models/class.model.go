package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class approval statuses.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type Class struct {
	ID              string  `gorm:"primaryKey" json:"id"`
	Title           string  `json:"title"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
	Price           float64 `json:"price"`
	Seats           int     `json:"seats"`
	Enrolled        int     `gorm:"default:0" json:"enrolled"`
	Status          string  `gorm:"default:'pending'" json:"status"`
	Feedback        string  `json:"feedback"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BeforeCreate assigns the opaque id clients use to reference the class
// from selections and payments.
func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
