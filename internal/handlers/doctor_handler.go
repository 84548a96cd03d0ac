package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/refdata"
	"github.com/tabeebak/clinic-scheduler/internal/storage"
)

type DoctorHandler struct {
	db     *gorm.DB
	lists  *refdata.Lists
	photos *storage.PhotoStore
}

func NewDoctorHandler(db *gorm.DB, lists *refdata.Lists, photos *storage.PhotoStore) *DoctorHandler {
	return &DoctorHandler{db: db, lists: lists, photos: photos}
}

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// List is the public doctor directory: optional specialty, governorate
// and name filters, paginated, best rated first.
func (h *DoctorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	q := h.db.Model(&models.Doctor{})
	if specialty := c.Query("specialty"); specialty != "" {
		q = q.Where("specialty = ?", specialty)
	}
	if governorate := c.Query("governorate"); governorate != "" {
		q = q.Where("governorate = ?", governorate)
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed to list doctors")
		return
	}

	var doctors []models.Doctor
	if err := q.
		Order("average_rating DESC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed to list doctors")
		return
	}

	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}

	c.JSON(200, gin.H{
		"success": true,
		"count":   len(doctors),
		"total":   total,
		"page":    page,
		"pages":   pages,
		"data":    doctors,
	})
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid doctor id")
		return
	}

	var doctor models.Doctor
	if err := h.db.
		Preload("Slots", "is_available = ?", true).
		First(&doctor, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor not found")
		return
	}

	c.JSON(200, gin.H{"success": true, "data": doctor})
}

// UpdateMe accepts multipart form fields and an optional photo part.
// Email and password are not editable here.
func (h *DoctorHandler) UpdateMe(c *gin.Context) {
	id, _ := actor(c)

	var doctor models.Doctor
	if err := h.db.First(&doctor, id).Error; err != nil {
		httperr.NotFound(c, "doctor not found")
		return
	}

	updates := map[string]any{}
	setFormString(c, updates, "name", "name")
	setFormString(c, updates, "address", "address")
	setFormString(c, updates, "phone", "phone")
	setFormString(c, updates, "bio", "bio")
	setFormInt(c, updates, "age", "age")
	setFormInt(c, updates, "experience", "experience")
	setFormFloat(c, updates, "lat", "lat")
	setFormFloat(c, updates, "lng", "lng")

	if specialty, ok := c.GetPostForm("specialty"); ok {
		if !h.lists.Specialties.Contains(specialty) {
			httperr.BadRequest(c, "unknown specialty")
			return
		}
		updates["specialty"] = specialty
	}
	if governorate, ok := c.GetPostForm("governorate"); ok {
		if !h.lists.Governorates.Contains(governorate) {
			httperr.BadRequest(c, "unknown governorate")
			return
		}
		updates["governorate"] = governorate
	}

	if file, err := c.FormFile("photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.BadRequest(c, "failed to read photo")
			return
		}
		defer src.Close()

		url, key, err := h.photos.Upload(c.Request.Context(), "doctors", src)
		if err != nil {
			httperr.Internal(c, "failed to upload photo")
			return
		}
		// Old object is removed after the new one is safely stored.
		_ = h.photos.Remove(c.Request.Context(), doctor.PhotoKey)

		updates["photo"] = url
		updates["photo_key"] = key
	}

	if len(updates) > 0 {
		if err := h.db.Model(&doctor).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed to update profile")
			return
		}
	}

	if err := h.db.Preload("Slots").First(&doctor, id).Error; err != nil {
		httperr.Internal(c, "failed to load profile")
		return
	}
	c.JSON(200, gin.H{"success": true, "data": doctor})
}

func setFormString(c *gin.Context, updates map[string]any, form, col string) {
	if v, ok := c.GetPostForm(form); ok {
		updates[col] = v
	}
}

func setFormInt(c *gin.Context, updates map[string]any, form, col string) {
	if v, ok := c.GetPostForm(form); ok {
		if n, err := strconv.Atoi(v); err == nil {
			updates[col] = n
		}
	}
}

func setFormFloat(c *gin.Context, updates map[string]any, form, col string) {
	if v, ok := c.GetPostForm(form); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			updates[col] = f
		}
	}
}
