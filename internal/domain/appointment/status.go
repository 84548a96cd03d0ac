package appointment

import "github.com/tabeebak/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel: only a confirmed appointment can be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only a confirmed appointment can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReassert: re-stating confirmed is a no-op, but never resurrects a
// terminal appointment.
func CanReassert(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
