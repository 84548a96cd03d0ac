package appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tabeebak/clinic-scheduler/internal/domain/appointment"
	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

func validBookInput() BookInput {
	return BookInput{
		DoctorID:  1,
		PatientID: 2,
		SlotID:    "slot-1",
		Type:      "consultation",
		Reason:    "persistent chest pain for two weeks",
		Day:       "monday",
		StartTime: "10:00",
		EndTime:   "10:30",
		Price:     300,
	}
}

func TestBookAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), validBookInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, uint(1), ap.DoctorID)
	assert.Equal(t, uint(2), ap.PatientID)
	assert.Equal(t, 300.0, ap.Price)

	assert.False(t, repo.slots["slot-1"].IsAvailable, "booked slot must be held")
}

func TestBookAppointmentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookInput)
		code   string
	}{
		{"missing slot", func(in *BookInput) { in.SlotID = "" }, "missing_fields"},
		{"missing reason", func(in *BookInput) { in.Reason = "" }, "missing_fields"},
		{"missing day", func(in *BookInput) { in.Day = "" }, "missing_fields"},
		{"negative price", func(in *BookInput) { in.Price = -1 }, "invalid_price"},
		{"reason too short", func(in *BookInput) { in.Reason = "headache" }, "invalid_reason"},
		{"reason too long", func(in *BookInput) { in.Reason = strings.Repeat("x", 501) }, "invalid_reason"},
		{"bad type", func(in *BookInput) { in.Type = "surgery" }, "invalid_type"},
		{"bad day", func(in *BookInput) { in.Day = "someday" }, "invalid_day"},
		{"unknown doctor", func(in *BookInput) { in.DoctorID = 99 }, "doctor_not_found"},
		{"unknown patient", func(in *BookInput) { in.PatientID = 99 }, "patient_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.seedBookable()
			uc := NewBookAppointment(repo, nil)

			in := validBookInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.code),
				"want code %s, got %v", tt.code, err)

			assert.True(t, repo.slots["slot-1"].IsAvailable,
				"failed booking must not hold the slot")
			assert.Empty(t, repo.appointments,
				"failed booking must not insert")
		})
	}
}

func TestBookAppointmentZeroPriceAllowed(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	uc := NewBookAppointment(repo, nil)

	in := validBookInput()
	in.Price = 0

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ap.Price)
}

func TestBookAppointmentSlotConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.seedBookable()
	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), validBookInput())
	require.NoError(t, err)

	// Second booking of the same slot fails and changes nothing.
	_, err = uc.Execute(context.Background(), validBookInput())
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"), "got %v", err)
	assert.Len(t, repo.appointments, 1)
}
