package booking

import (
	"context"

	"github.com/heritagecuts/barbershop-api/internal/models"
)

type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Repository interface {
	// -------- Reference data --------
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	ListServices(ctx context.Context) ([]models.Service, error)

	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Availability --------
	ListFreeSlotTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	NextFreeSlot(
		ctx context.Context,
		barberID uint,
		fromDate string,
	) (*Slot, error)

	// -------- Appointment (create / reserve) --------

	// CreateBooked inserts the appointment and claims its slot in a
	// single transaction. The slot claim is one conditional update;
	// zero affected rows is the sole already-booked signal and rolls
	// the insert back with ErrBusiness("slot_unavailable").
	CreateBooked(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// ReleaseSlot frees the slot held by a cancelled appointment.
	ReleaseSlot(ctx context.Context, appointmentID uint) error

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
