package appointment

import (
	"context"
	"time"

	"github.com/tabeebak/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Directories --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetSlot(
		ctx context.Context,
		doctorID uint,
		slotID string,
	) (*models.Slot, error)

	// -------- Booking --------
	// BookSlot atomically marks the slot unavailable and inserts the
	// appointment; it fails without side effects when the slot is missing
	// or already held.
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Transitions --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ArchiveAppointment atomically inserts the archive snapshot, appends
	// the patient's completed-history reference and deletes the ledger row.
	// Re-running it for the same original appointment is a no-op.
	ArchiveAppointment(
		ctx context.Context,
		ap *models.Appointment,
		visit *models.ArchiveVisit,
	) error

	// CancelAppointment atomically frees the referenced slot (when still
	// present) and retains the row with status cancelled.
	CancelAppointment(
		ctx context.Context,
		ap *models.Appointment,
		now time.Time,
	) error

	UpdateStatus(
		ctx context.Context,
		appointmentID uint,
		status Status,
	) error

	// -------- Reads --------
	ListByDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	ListByPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListArchiveByDoctor(
		ctx context.Context,
		doctorID uint,
		patientName string,
	) ([]models.ArchiveVisit, error)

	GetArchiveByID(
		ctx context.Context,
		id uint,
	) (*models.ArchiveVisit, error)

	ListDoctorPatients(
		ctx context.Context,
		doctorID uint,
		search string,
	) ([]models.Patient, error)
}
