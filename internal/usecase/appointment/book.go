package appointment

import (
	"context"

	"github.com/tabeebak/clinic-scheduler/internal/audit"
	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
	"github.com/tabeebak/clinic-scheduler/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	DoctorID  uint
	PatientID uint
	SlotID    string

	Type   string
	Reason string

	Day       string
	StartTime string
	EndTime   string
	Price     float64
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validation, all before any write
	// --------------------------------------------------
	if in.DoctorID == 0 || in.PatientID == 0 || in.SlotID == "" ||
		in.Type == "" || in.Reason == "" || in.Day == "" ||
		in.StartTime == "" || in.EndTime == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	if len(in.Reason) < 10 || len(in.Reason) > 500 {
		return nil, httperr.ErrBusiness("invalid_reason")
	}

	if !schedule.ValidVisitType(in.Type) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	if !schedule.ValidDay(in.Day) {
		return nil, httperr.ErrBusiness("invalid_day")
	}

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if _, err := uc.repo.GetPatientByID(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// Slot hold + insert, one commit point
	// --------------------------------------------------
	ap := &models.Appointment{
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		SlotID:    in.SlotID,
		Type:      in.Type,
		Reason:    in.Reason,
		Day:       in.Day,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Price:     in.Price,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "Patient",
		ActorID:   &in.PatientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
