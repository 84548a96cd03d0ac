package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Directories
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *BookingGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	doctorID uint,
	slotID string,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND doctor_id = ?", ap.SlotID, ap.DoctorID).
			First(&slot).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		if !slot.IsAvailable {
			return httperr.ErrBusiness("slot_unavailable")
		}

		if err := tx.Model(&models.Slot{}).
			Where("id = ?", slot.ID).
			Update("is_available", false).Error; err != nil {
			return err
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Transitions
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) ArchiveAppointment(
	ctx context.Context,
	ap *models.Appointment,
	visit *models.ArchiveVisit,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "original_appointment_id"}},
				DoNothing: true,
			}).
			Create(visit).Error; err != nil {
			return err
		}

		// Conflict path: the snapshot already exists, reuse its id so the
		// history reference still points at the right record.
		if visit.ID == 0 {
			if err := tx.
				Where("original_appointment_id = ?", ap.ID).
				First(visit).Error; err != nil {
				return err
			}
		}

		ref := models.CompletedVisitRef{
			PatientID:      ap.PatientID,
			ArchiveVisitID: visit.ID,
		}
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&ref).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Appointment{}, ap.ID).Error
	})
}

func (r *BookingGormRepository) CancelAppointment(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Slot may have been deleted by the doctor since booking.
		if err := tx.Model(&models.Slot{}).
			Where("id = ? AND doctor_id = ?", ap.SlotID, ap.DoctorID).
			Update("is_available", true).Error; err != nil {
			return err
		}

		return tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":       string(domain.StatusCancelled),
				"cancelled_at": now,
			}).Error
	})
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	appointmentID uint,
	status domain.Status,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("status", string(status)).Error
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListByPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListArchiveByDoctor(
	ctx context.Context,
	doctorID uint,
	patientName string,
) ([]models.ArchiveVisit, error) {

	q := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if patientName != "" {
		q = q.Where("patient_name ILIKE ?", "%"+patientName+"%")
	}

	var visits []models.ArchiveVisit
	if err := q.
		Order("completed_at DESC").
		Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *BookingGormRepository) GetArchiveByID(
	ctx context.Context,
	id uint,
) (*models.ArchiveVisit, error) {

	var visit models.ArchiveVisit
	if err := r.db.WithContext(ctx).First(&visit, id).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *BookingGormRepository) ListDoctorPatients(
	ctx context.Context,
	doctorID uint,
	search string,
) ([]models.Patient, error) {

	q := r.db.WithContext(ctx).
		Where(`id IN (
			SELECT patient_id FROM appointments WHERE doctor_id = ?
			UNION
			SELECT patient_id FROM archive_visits WHERE doctor_id = ?
		)`, doctorID, doctorID)

	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var patients []models.Patient
	if err := q.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
