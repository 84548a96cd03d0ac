package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

func bookOne(t *testing.T, repo *fakeRepo) uint {
	t.Helper()
	ap, err := NewBookAppointment(repo, nil).Execute(context.Background(), validBookInput())
	require.NoError(t, err)
	return ap.ID
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	apID := bookOne(t, repo)

	uc := NewTransitionAppointment(repo, nil)
	completedAt := time.Date(2026, time.August, 20, 14, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return completedAt }

	result, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: apID,
		Status:        domain.StatusCompleted,
		Actor:         Actor{Role: "Doctor", ID: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Archive)

	visit := result.Archive
	assert.Equal(t, apID, visit.OriginalAppointmentID)
	assert.Equal(t, completedAt, visit.CompletedAt)
	assert.Equal(t, 300.0, visit.Price)

	// Snapshot carries the names as they were at completion time.
	assert.Equal(t, "Dr. Mona Hassan", visit.DoctorName)
	assert.Equal(t, "Cardiologist", visit.DoctorSpecialty)
	assert.Equal(t, "Omar Farouk", visit.PatientName)
	assert.Equal(t, "01001234567", visit.PatientPhone)

	// The active row is gone, the patient's history reference exists.
	assert.Empty(t, repo.appointments)
	require.Len(t, repo.refs, 1)
	assert.Equal(t, uint(2), repo.refs[0].PatientID)
	assert.Equal(t, visit.ID, repo.refs[0].ArchiveVisitID)
}

func TestCancelAppointmentFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	apID := bookOne(t, repo)
	require.False(t, repo.slots["slot-1"].IsAvailable)

	uc := NewTransitionAppointment(repo, nil)
	result, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: apID,
		Status:        domain.StatusCancelled,
		Actor:         Actor{Role: "Patient", ID: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Appointment)

	assert.Equal(t, string(domain.StatusCancelled), result.Appointment.Status)
	assert.NotNil(t, result.Appointment.CancelledAt)

	// Cancellation keeps the row and reopens the slot.
	assert.True(t, repo.slots["slot-1"].IsAvailable)
	require.Contains(t, repo.appointments, apID)
	assert.Equal(t, string(domain.StatusCancelled), repo.appointments[apID].Status)
}

func TestCancelledAppointmentStaysCancelled(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	apID := bookOne(t, repo)

	uc := NewTransitionAppointment(repo, nil)
	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: apID,
		Status:        domain.StatusCancelled,
		Actor:         Actor{Role: "Patient", ID: 2},
	})
	require.NoError(t, err)

	for _, next := range []domain.Status{
		domain.StatusCompleted, domain.StatusConfirmed, domain.StatusCancelled,
	} {
		_, err := uc.Execute(context.Background(), TransitionInput{
			AppointmentID: apID,
			Status:        next,
			Actor:         Actor{Role: "Patient", ID: 2},
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"),
			"transition to %s: got %v", next, err)
	}
}

func TestTransitionOwnership(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		code  string
	}{
		{"other doctor", Actor{Role: "Doctor", ID: 7}, "not_owner"},
		{"other patient", Actor{Role: "Patient", ID: 7}, "not_owner"},
		{"unknown role", Actor{Role: "Admin", ID: 1}, "not_owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.seedBookable()
			apID := bookOne(t, repo)

			uc := NewTransitionAppointment(repo, nil)
			_, err := uc.Execute(context.Background(), TransitionInput{
				AppointmentID: apID,
				Status:        domain.StatusCancelled,
				Actor:         tt.actor,
			})
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
			assert.False(t, repo.slots["slot-1"].IsAvailable,
				"denied transition must not touch the slot")
		})
	}
}

func TestTransitionUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()

	uc := NewTransitionAppointment(repo, nil)
	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 42,
		Status:        domain.StatusCancelled,
		Actor:         Actor{Role: "Patient", ID: 2},
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"), "got %v", err)
}

func TestTransitionInvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	apID := bookOne(t, repo)

	uc := NewTransitionAppointment(repo, nil)
	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: apID,
		Status:        "pending",
		Actor:         Actor{Role: "Patient", ID: 2},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"), "got %v", err)
}

func TestReassertConfirmedIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	apID := bookOne(t, repo)

	uc := NewTransitionAppointment(repo, nil)
	result, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: apID,
		Status:        domain.StatusConfirmed,
		Actor:         Actor{Role: "Doctor", ID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), result.Appointment.Status)
	assert.False(t, repo.slots["slot-1"].IsAvailable)
}
