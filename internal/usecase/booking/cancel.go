package booking

import (
	"context"
	"log"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	"github.com/heritagecuts/barbershop-api/internal/models"
	"github.com/heritagecuts/barbershop-api/internal/timezone"
)

type CancelAppointment struct {
	repo domain.Repository
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo}
}

// Execute cancels the appointment and frees its slot so the time
// becomes bookable again.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Customers may cancel their own appointment; anything else needs
	// a staff role.
	owns := ap.UserID != nil && *ap.UserID == actor.UserID
	if !owns && !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.ReleaseSlot(ctx, ap.ID); err != nil {
		log.Printf("failed to release slot for appointment %d: %v", ap.ID, err)
	}

	return ap, nil
}
