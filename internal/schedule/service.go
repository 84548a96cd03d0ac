// Package schedule manages a doctor's weekly availability slots. Every
// operation is scoped to the owning doctor; slot ids are never resolvable
// without that context.
package schedule

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type AddSlotInput struct {
	Day          string
	StartTime    string
	EndTime      string
	SlotDuration int
	Type         string
}

type UpdateSlotInput struct {
	Day          string
	StartTime    string
	EndTime      string
	SlotDuration int
}

func (s *Service) AddSlot(
	ctx context.Context,
	doctorID uint,
	in AddSlotInput,
) ([]models.Slot, error) {

	if err := ValidateWindow(in.Day, in.StartTime, in.EndTime, in.Type); err != nil {
		return nil, err
	}

	duration := in.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}

	slot := models.Slot{
		ID:           uuid.NewString(),
		DoctorID:     doctorID,
		Day:          strings.ToLower(in.Day),
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		SlotDuration: duration,
		IsAvailable:  true,
		Type:         in.Type,
	}

	if err := s.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, err
	}

	return s.slotsOf(ctx, doctorID)
}

// UpdateSlot rewrites the window fields in place. Availability is not
// editable through this path; it belongs to the appointment lifecycle.
func (s *Service) UpdateSlot(
	ctx context.Context,
	doctorID uint,
	slotID string,
	in UpdateSlotInput,
) ([]models.Slot, error) {

	slot, err := s.getSlot(ctx, doctorID, slotID)
	if err != nil {
		return nil, err
	}

	if err := ValidateWindow(in.Day, in.StartTime, in.EndTime, slot.Type); err != nil {
		return nil, err
	}

	duration := in.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		Updates(map[string]any{
			"day":           strings.ToLower(in.Day),
			"start_time":    in.StartTime,
			"end_time":      in.EndTime,
			"slot_duration": duration,
		}).Error; err != nil {
		return nil, err
	}

	return s.slotsOf(ctx, doctorID)
}

func (s *Service) ToggleSlot(
	ctx context.Context,
	doctorID uint,
	slotID string,
) ([]models.Slot, error) {

	slot, err := s.getSlot(ctx, doctorID, slotID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		Update("is_available", !slot.IsAvailable).Error; err != nil {
		return nil, err
	}

	return s.slotsOf(ctx, doctorID)
}

func (s *Service) DeleteSlot(
	ctx context.Context,
	doctorID uint,
	slotID string,
) ([]models.Slot, error) {

	res := s.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		Delete(&models.Slot{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	return s.slotsOf(ctx, doctorID)
}

// ListSlots returns the doctor's slots, all of them or available-only
// depending on showAll. Read-only.
func (s *Service) ListSlots(
	ctx context.Context,
	doctorID uint,
	showAll bool,
) (*models.Doctor, []models.Slot, error) {

	var doctor models.Doctor
	if err := s.db.WithContext(ctx).
		Select("id", "name", "specialty").
		First(&doctor, doctorID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrBusiness("doctor_not_found")
		}
		return nil, nil, err
	}

	q := s.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if !showAll {
		q = q.Where("is_available = ?", true)
	}

	var slots []models.Slot
	if err := q.Order("created_at ASC").Find(&slots).Error; err != nil {
		return nil, nil, err
	}

	return &doctor, slots, nil
}

func (s *Service) getSlot(
	ctx context.Context,
	doctorID uint,
	slotID string,
) (*models.Slot, error) {

	var slot models.Slot
	if err := s.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		First(&slot).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

func (s *Service) slotsOf(ctx context.Context, doctorID uint) ([]models.Slot, error) {
	var slots []models.Slot
	if err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
