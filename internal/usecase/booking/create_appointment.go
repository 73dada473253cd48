package booking

import (
	"context"
	"time"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/models"
	"github.com/heritagecuts/barbershop-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Customer domain.Customer

	BarberID  uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		TimeSlot:  in.Time,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}
	in.Customer.Apply(ap)

	// Insert and slot claim run in one transaction; a lost race comes
	// back as slot_unavailable with nothing persisted.
	if err := uc.repo.CreateBooked(ctx, ap); err != nil {
		return nil, err
	}

	ap.Barber = *barber
	ap.Service = *service

	uc.notify.Dispatch(notify.Event{
		Type: "appointment_booked",
		Data: ap,
	})

	return ap, nil
}
