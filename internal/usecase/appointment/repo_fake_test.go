package appointment

import (
	"context"
	"time"

	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
	"github.com/tabeebak/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository with the same atomicity contract
// as the real one: BookSlot either holds the slot and inserts, or does
// nothing.
type fakeRepo struct {
	doctors      map[uint]*models.Doctor
	patients     map[uint]*models.Patient
	slots        map[string]*models.Slot
	appointments map[uint]*models.Appointment
	archives     map[uint]*models.ArchiveVisit
	refs         []models.CompletedVisitRef

	nextAppointmentID uint
	nextArchiveID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors:      map[uint]*models.Doctor{},
		patients:     map[uint]*models.Patient{},
		slots:        map[string]*models.Slot{},
		appointments: map[uint]*models.Appointment{},
		archives:     map[uint]*models.ArchiveVisit{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	if d, ok := f.doctors[id]; ok {
		return d, nil
	}
	return nil, httperr.ErrBusiness("doctor_not_found")
}

func (f *fakeRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	if p, ok := f.patients[id]; ok {
		return p, nil
	}
	return nil, httperr.ErrBusiness("patient_not_found")
}

func (f *fakeRepo) GetSlot(_ context.Context, doctorID uint, slotID string) (*models.Slot, error) {
	if s, ok := f.slots[slotID]; ok && s.DoctorID == doctorID {
		return s, nil
	}
	return nil, httperr.ErrBusiness("slot_not_found")
}

func (f *fakeRepo) BookSlot(_ context.Context, ap *models.Appointment) error {
	slot, ok := f.slots[ap.SlotID]
	if !ok || slot.DoctorID != ap.DoctorID || !slot.IsAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}

	slot.IsAvailable = false
	f.nextAppointmentID++
	ap.ID = f.nextAppointmentID
	ap.CreatedAt = time.Now()

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	out := *ap
	if d, ok := f.doctors[ap.DoctorID]; ok {
		out.Doctor = *d
	}
	if p, ok := f.patients[ap.PatientID]; ok {
		out.Patient = *p
	}
	return &out, nil
}

func (f *fakeRepo) ArchiveAppointment(_ context.Context, ap *models.Appointment, visit *models.ArchiveVisit) error {
	for _, existing := range f.archives {
		if existing.OriginalAppointmentID == visit.OriginalAppointmentID {
			*visit = *existing
			delete(f.appointments, ap.ID)
			return nil
		}
	}

	f.nextArchiveID++
	visit.ID = f.nextArchiveID
	stored := *visit
	f.archives[visit.ID] = &stored

	f.refs = append(f.refs, models.CompletedVisitRef{
		PatientID:      visit.PatientID,
		ArchiveVisitID: visit.ID,
	})

	delete(f.appointments, ap.ID)
	return nil
}

func (f *fakeRepo) CancelAppointment(_ context.Context, ap *models.Appointment, now time.Time) error {
	if slot, ok := f.slots[ap.SlotID]; ok {
		slot.IsAvailable = true
	}

	stored := f.appointments[ap.ID]
	stored.Status = string(domain.StatusCancelled)
	t := now
	stored.CancelledAt = &t
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, appointmentID uint, status domain.Status) error {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	ap.Status = string(status)
	return nil
}

func (f *fakeRepo) ListByDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.PatientID == patientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListArchiveByDoctor(_ context.Context, doctorID uint, _ string) ([]models.ArchiveVisit, error) {
	var out []models.ArchiveVisit
	for _, v := range f.archives {
		if v.DoctorID == doctorID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetArchiveByID(_ context.Context, id uint) (*models.ArchiveVisit, error) {
	if v, ok := f.archives[id]; ok {
		out := *v
		return &out, nil
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) ListDoctorPatients(_ context.Context, doctorID uint, _ string) ([]models.Patient, error) {
	seen := map[uint]bool{}
	var out []models.Patient
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID && !seen[ap.PatientID] {
			seen[ap.PatientID] = true
			out = append(out, *f.patients[ap.PatientID])
		}
	}
	return out, nil
}

// seedBookable puts one doctor, one patient and one open slot in place.
func (f *fakeRepo) seedBookable() {
	f.doctors[1] = &models.Doctor{
		ID: 1, Name: "Dr. Mona Hassan", Specialty: "Cardiologist",
	}
	f.patients[2] = &models.Patient{
		ID: 2, Name: "Omar Farouk", Phone: "01001234567",
	}
	f.slots["slot-1"] = &models.Slot{
		ID: "slot-1", DoctorID: 1, Day: "monday",
		StartTime: "10:00", EndTime: "10:30", IsAvailable: true,
		Type: "consultation",
	}
}
