package appointment

import (
	"context"
	"time"

	"github.com/tabeebak/clinic-scheduler/internal/audit"
	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
)

// Actor is whoever asked for the transition; both roles may only touch
// appointments referencing their own identity.
type Actor struct {
	Role string
	ID   uint
}

type TransitionInput struct {
	AppointmentID uint
	Status        domain.Status
	Actor         Actor
}

// Result carries whichever record the transition produced: the archive
// snapshot on completion, the updated appointment otherwise.
type Result struct {
	Appointment *models.Appointment
	Archive     *models.ArchiveVisit
}

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionInput,
) (*Result, error) {

	if !domain.ValidStatus(in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch in.Actor.Role {
	case "Patient":
		if ap.PatientID != in.Actor.ID {
			return nil, httperr.ErrBusiness("not_owner")
		}
	case "Doctor":
		if ap.DoctorID != in.Actor.ID {
			return nil, httperr.ErrBusiness("not_owner")
		}
	default:
		return nil, httperr.ErrBusiness("not_owner")
	}

	switch in.Status {

	case domain.StatusCompleted:
		if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
			return nil, err
		}

		// Populated read: names are frozen into the snapshot now, later
		// profile edits never reach the archive.
		if ap.Doctor.ID == 0 {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		if ap.Patient.ID == 0 {
			return nil, httperr.ErrBusiness("patient_not_found")
		}

		visit := NewArchiveVisit(ap, uc.now())
		if err := uc.repo.ArchiveAppointment(ctx, ap, visit); err != nil {
			return nil, err
		}

		uc.dispatch(in, "appointment_completed", ap.ID)
		return &Result{Archive: visit}, nil

	case domain.StatusCancelled:
		if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
			return nil, err
		}

		now := uc.now()
		if err := uc.repo.CancelAppointment(ctx, ap, now); err != nil {
			return nil, err
		}

		ap.Status = string(domain.StatusCancelled)
		ap.CancelledAt = &now

		uc.dispatch(in, "appointment_cancelled", ap.ID)
		return &Result{Appointment: ap}, nil

	default: // confirmed, defensive re-assert
		if err := domain.CanReassert(domain.Status(ap.Status)); err != nil {
			return nil, err
		}

		if err := uc.repo.UpdateStatus(ctx, ap.ID, domain.StatusConfirmed); err != nil {
			return nil, err
		}
		return &Result{Appointment: ap}, nil
	}
}

func (uc *TransitionAppointment) dispatch(in TransitionInput, action string, apID uint) {
	actorID := in.Actor.ID
	uc.audit.Dispatch(audit.Event{
		ActorRole: in.Actor.Role,
		ActorID:   &actorID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &apID,
	})
}

// NewArchiveVisit builds the immutable snapshot for a completing
// appointment, denormalizing the display fields read back without joins.
func NewArchiveVisit(ap *models.Appointment, now time.Time) *models.ArchiveVisit {
	return &models.ArchiveVisit{
		OriginalAppointmentID: ap.ID,
		DoctorID:              ap.DoctorID,
		PatientID:             ap.PatientID,
		Type:                  ap.Type,
		Reason:                ap.Reason,
		Day:                   ap.Day,
		StartTime:             ap.StartTime,
		EndTime:               ap.EndTime,
		Price:                 ap.Price,
		DoctorName:            ap.Doctor.Name,
		DoctorSpecialty:       ap.Doctor.Specialty,
		PatientName:           ap.Patient.Name,
		PatientPhone:          ap.Patient.Phone,
		CompletedAt:           now,
	}
}
