package utils

import (
	"athletex/database"
	"athletex/models"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeAuditScheduler starts the nightly data-consistency audit.
//
// The payment flow runs three writes with no shared transaction, so a failure
// mid-way can strand a selection or drive a seat count negative. The audit
// only reports such rows; it never repairs them.
func InitializeAuditScheduler() {
	log.Println("[AUDIT] Initializing consistency audit scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[AUDIT] Running daily consistency audit...")
		RunConsistencyAudit()
	})

	c.Start()
	log.Println("[AUDIT] Consistency audit scheduler started - runs daily at 3 AM")
}

// RunConsistencyAudit counts selections pointing at missing classes and
// classes whose seat counter went below zero.
func RunConsistencyAudit() {
	db := database.Database.Db

	var orphanedSelections int64
	if err := db.Model(&models.SelectedClass{}).
		Where("class_id NOT IN (?)", db.Model(&models.Class{}).Select("id")).
		Count(&orphanedSelections).Error; err != nil {
		log.Printf("[AUDIT] Failed to count orphaned selections: %v", err)
	} else if orphanedSelections > 0 {
		log.Printf("[AUDIT] %d selected class record(s) reference a class that no longer exists", orphanedSelections)
	}

	var oversoldClasses int64
	if err := db.Model(&models.Class{}).
		Where("seats < 0").
		Count(&oversoldClasses).Error; err != nil {
		log.Printf("[AUDIT] Failed to count oversold classes: %v", err)
	} else if oversoldClasses > 0 {
		log.Printf("[AUDIT] %d class(es) have a negative seat count", oversoldClasses)
	}

	if orphanedSelections == 0 && oversoldClasses == 0 {
		log.Println("[AUDIT] No inconsistencies found")
	}
}
