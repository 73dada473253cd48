package booking

import "github.com/heritagecuts/barbershop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// The booking flow only ever creates rows in pending; the remaining
// transitions belong to staff workflows.
func InitialStatus() Status {
	return StatusPending
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel allows any non-terminal state to be cancelled.
func CanCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
