package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/httpresp"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/storage"
)

type PatientHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewPatientHandler(db *gorm.DB, photos *storage.PhotoStore) *PatientHandler {
	return &PatientHandler{db: db, photos: photos}
}

// UpdateMe mirrors the doctor profile update: multipart form fields plus
// an optional photo part. Email and password stay out of this path.
func (h *PatientHandler) UpdateMe(c *gin.Context) {
	id, _ := actor(c)

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		httperr.NotFound(c, "patient not found")
		return
	}

	updates := map[string]any{}
	setFormString(c, updates, "name", "name")
	setFormString(c, updates, "phone", "phone")
	setFormString(c, updates, "gender", "gender")
	setFormInt(c, updates, "age", "age")

	if file, err := c.FormFile("photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.BadRequest(c, "failed to read photo")
			return
		}
		defer src.Close()

		url, key, err := h.photos.Upload(c.Request.Context(), "patients", src)
		if err != nil {
			httperr.Internal(c, "failed to upload photo")
			return
		}
		_ = h.photos.Remove(c.Request.Context(), patient.PhotoKey)

		updates["photo"] = url
		updates["photo_key"] = key
	}

	if len(updates) > 0 {
		if err := h.db.Model(&patient).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed to update profile")
			return
		}
	}

	if err := h.db.First(&patient, id).Error; err != nil {
		httperr.Internal(c, "failed to load profile")
		return
	}
	httpresp.OK(c, patient)
}
