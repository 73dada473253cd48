package booking

import (
	"context"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

type ConfirmAppointment struct {
	repo domain.Repository
}

func NewConfirmAppointment(repo domain.Repository) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo}
}

func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
