// Package jobs runs the nightly slot reconciler. A slot referenced by a
// confirmed appointment must never read as available; the reconciler
// repairs that direction of drift and reports the other, since doctors
// may legitimately keep a free slot toggled off.
package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartReconciler schedules the nightly run and returns the started cron
// so the caller can Stop it on shutdown.
func StartReconciler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	c.AddFunc("5 0 * * *", func() {
		if err := ReconcileSlots(context.Background(), db); err != nil {
			log.Printf("[jobs] slot reconcile failed: %v", err)
		}
	})
	c.Start()
	return c
}

// ReconcileSlots closes slots that a confirmed appointment still points
// at. Slots closed with no backing appointment are only counted; a manual
// toggle looks identical to drift from here.
func ReconcileSlots(ctx context.Context, db *gorm.DB) error {
	res := db.WithContext(ctx).Exec(`
		UPDATE slots
		SET is_available = FALSE
		WHERE is_available = TRUE
		  AND id IN (SELECT slot_id FROM appointments WHERE status = 'confirmed')`)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[jobs] closed %d slots left open under confirmed appointments", res.RowsAffected)
	}

	var orphaned int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM slots
		WHERE is_available = FALSE
		  AND id NOT IN (SELECT slot_id FROM appointments WHERE status = 'confirmed')`).
		Scan(&orphaned).Error
	if err != nil {
		return err
	}
	if orphaned > 0 {
		log.Printf("[jobs] %d closed slots have no confirmed appointment (may be manual toggles)", orphaned)
	}
	return nil
}
