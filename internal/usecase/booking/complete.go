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

// PointsAwarder lets completion credit loyalty points without binding
// this package to the loyalty use cases directly.
type PointsAwarder interface {
	Execute(
		ctx context.Context,
		userID uint,
		appointmentID *uint,
		servicePrice float64,
	) error
}

type CompleteAppointment struct {
	repo    domain.Repository
	awarder PointsAwarder
}

func NewCompleteAppointment(
	repo domain.Repository,
	awarder PointsAwarder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		awarder: awarder,
	}
}

// Execute marks the appointment completed and, when it belongs to a
// registered user, awards loyalty points for the service price. The
// award is best-effort: a failure is logged and the completion stands.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if ap.UserID != nil && uc.awarder != nil {
		if err := uc.awarder.Execute(ctx, *ap.UserID, &ap.ID, ap.Service.Price); err != nil {
			log.Printf("loyalty award failed for appointment %d: %v", ap.ID, err)
		}
	}

	return ap, nil
}
