package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("price ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListFreeSlotTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where(
			"barber_id = ? AND date = ? AND is_booked = ?",
			barberID, date, false,
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) NextFreeSlot(
	ctx context.Context,
	barberID uint,
	fromDate string,
) (*domain.Slot, error) {

	var slot models.TimeSlot
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND is_booked = ? AND date >= ?",
			barberID, false, fromDate,
		).
		Order("date ASC, time ASC").
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.Slot{Date: slot.Date, Time: slot.Time}, nil
}

// --------------------------------------------------
// Appointment (create / reserve)
// --------------------------------------------------

// CreateBooked claims the slot with a single conditional update inside
// the same transaction as the appointment insert. Zero affected rows is
// the sole already-booked signal; the insert rolls back with it.
func (r *BookingGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		res := tx.Model(&models.TimeSlot{}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND is_booked = ?",
				ap.BarberID, ap.Date, ap.TimeSlot, false,
			).
			Updates(map[string]any{
				"is_booked":      true,
				"appointment_id": ap.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	appointmentID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("appointment_id = ?", appointmentID).
		Updates(map[string]any{
			"is_booked":      false,
			"appointment_id": nil,
		}).Error
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, time_slot DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
