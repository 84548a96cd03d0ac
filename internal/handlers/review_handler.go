package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/audit"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/middleware"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/stats"
)

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: dispatcher}
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Add creates the patient's single review for a doctor and refreshes the
// doctor's average inside the same transaction.
func (h *ReviewHandler) Add(c *gin.Context) {
	patientID, _ := actor(c)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid doctor id")
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "rating must be between 1 and 5")
		return
	}
	if req.Comment == "" {
		httperr.BadRequest(c, "comment is required")
		return
	}

	review := models.Review{
		DoctorID:  uint(doctorID),
		PatientID: patientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.Select("id").First(&doctor, uint(doctorID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("doctor_not_found")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return httperr.ErrBusiness("already_reviewed")
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return refreshAverageRating(tx, uint(doctorID))
	})
	if err != nil {
		if httperr.IsBusiness(err, "already_reviewed") {
			httperr.BadRequest(c, "you have already reviewed this doctor")
			return
		}
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed to add review")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RolePatient,
		ActorID:   &patientID,
		Action:    "review_added",
		Entity:    "review",
		EntityID:  &review.ID,
	})

	c.JSON(201, gin.H{"success": true, "data": review})
}

// List is public: all reviews for a doctor, reviewer included, newest
// first.
func (h *ReviewHandler) List(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid doctor id")
		return
	}

	var doctor models.Doctor
	if err := h.db.Select("id", "average_rating").First(&doctor, uint(doctorID)).Error; err != nil {
		httperr.NotFound(c, "doctor not found")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed to list reviews")
		return
	}

	c.JSON(200, gin.H{
		"success":       true,
		"count":         len(reviews),
		"averageRating": doctor.AverageRating,
		"data":          reviews,
	})
}

// Delete removes the caller's own review and refreshes the average.
func (h *ReviewHandler) Delete(c *gin.Context) {
	patientID, _ := actor(c)

	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid doctor id")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
			Delete(&models.Review{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("review_not_found")
		}

		return refreshAverageRating(tx, uint(doctorID))
	})
	if err != nil {
		if httperr.IsBusiness(err, "review_not_found") {
			httperr.NotFound(c, "review not found")
			return
		}
		httperr.Internal(c, "failed to delete review")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RolePatient,
		ActorID:   &patientID,
		Action:    "review_deleted",
		Entity:    "review",
	})

	c.JSON(200, gin.H{"success": true, "message": "review deleted"})
}

// refreshAverageRating recomputes the stored average from scratch. Zero
// when the last review is gone, rounded to one decimal otherwise.
func refreshAverageRating(tx *gorm.DB, doctorID uint) error {
	var avg float64
	if err := tx.Model(&models.Review{}).
		Where("doctor_id = ?", doctorID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}

	return tx.Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Update("average_rating", stats.RoundRating(avg)).Error
}
