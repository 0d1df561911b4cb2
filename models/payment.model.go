package models

import "gorm.io/gorm"

// Payment is the immutable record of a completed seat purchase. Rows are
// only ever inserted; there is no update or delete path.
type Payment struct {
	gorm.Model
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	ClassID       string  `json:"classId"`
	ClassName     string  `json:"className"`
	TransactionID string  `json:"transactionId"` // gateway reference
}
