package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/heritagecuts/barbershop-api/internal/db"
	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	infraRepo "github.com/heritagecuts/barbershop-api/internal/infra/repository"
	"github.com/heritagecuts/barbershop-api/internal/models"
	"github.com/heritagecuts/barbershop-api/internal/notify"
	ucLoyalty "github.com/heritagecuts/barbershop-api/internal/usecase/loyalty"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func seedCalendar(t *testing.T, db *gorm.DB) (models.Barber, models.Service) {
	t.Helper()

	barber := models.Barber{Name: "Marcus Reed", Specialty: "Fades", Active: true}
	require.NoError(t, db.Create(&barber).Error)

	service := models.Service{Name: "Classic Cut", Price: 75, DurationMin: 45, Active: true}
	require.NoError(t, db.Create(&service).Error)

	for _, slot := range []string{"09:00", "09:30", "10:00"} {
		require.NoError(t, db.Create(&models.TimeSlot{
			BarberID: barber.ID,
			Date:     "2099-01-05",
			Time:     slot,
		}).Error)
	}

	return barber, service
}

func guest(t *testing.T) domain.Customer {
	t.Helper()
	c, err := domain.GuestCustomer("Walk In", "walkin@example.com", "")
	require.NoError(t, err)
	return c
}

func TestGetAvailableSlots(t *testing.T) {
	db := newTestDB(t)
	barber, _ := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := NewGetAvailableSlots(repo)

	ctx := context.Background()

	times, err := uc.Execute(ctx, barber.ID, "2099-01-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, times)

	// Repeated reads with no mutation return the same ordered result.
	again, err := uc.Execute(ctx, barber.ID, "2099-01-05")
	require.NoError(t, err)
	assert.Equal(t, times, again)

	// Empty inputs are not errors.
	empty, err := uc.Execute(ctx, 0, "2099-01-05")
	require.NoError(t, err)
	assert.Empty(t, empty)

	empty, err = uc.Execute(ctx, barber.ID, "")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = uc.Execute(ctx, barber.ID, "not-a-date")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateAppointmentClaimsSlot(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)

	create := NewCreateAppointment(repo, notify.NewDispatcher(""))
	slots := NewGetAvailableSlots(repo)

	ctx := context.Background()

	ap, err := create.Execute(ctx, CreateAppointmentInput{
		Customer:  guest(t),
		BarberID:  barber.ID,
		ServiceID: service.ID,
		Date:      "2099-01-05",
		Time:      "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "Classic Cut", ap.Service.Name)
	assert.Equal(t, "Marcus Reed", ap.Barber.Name)

	// The claimed time disappears from availability.
	times, err := slots.Execute(ctx, barber.ID, "2099-01-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:00"}, times)

	var slot models.TimeSlot
	require.NoError(t, db.Where("time = ?", "09:00").First(&slot).Error)
	assert.True(t, slot.IsBooked)
	require.NotNil(t, slot.AppointmentID)
	assert.Equal(t, ap.ID, *slot.AppointmentID)
}

func TestCreateAppointmentExactlyOneWins(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)
	create := NewCreateAppointment(repo, notify.NewDispatcher(""))

	ctx := context.Background()
	input := CreateAppointmentInput{
		Customer:  guest(t),
		BarberID:  barber.ID,
		ServiceID: service.ID,
		Date:      "2099-01-05",
		Time:      "09:30",
	}

	_, err := create.Execute(ctx, input)
	require.NoError(t, err)

	// The loser of the race gets slot_unavailable and nothing persists.
	_, err = create.Execute(ctx, input)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("time_slot = ?", "09:30").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateAppointmentValidation(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)
	create := NewCreateAppointment(repo, notify.NewDispatcher(""))

	ctx := context.Background()

	_, err := create.Execute(ctx, CreateAppointmentInput{
		Customer: guest(t), BarberID: barber.ID, ServiceID: service.ID,
		Date: "05/01/2099", Time: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = create.Execute(ctx, CreateAppointmentInput{
		Customer: guest(t), BarberID: 999, ServiceID: service.ID,
		Date: "2099-01-05", Time: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	_, err = create.Execute(ctx, CreateAppointmentInput{
		Customer: guest(t), BarberID: barber.ID, ServiceID: 999,
		Date: "2099-01-05", Time: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestNextAvailableSlot(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)

	create := NewCreateAppointment(repo, notify.NewDispatcher(""))
	next := NewGetNextAvailableSlot(repo)

	ctx := context.Background()

	slot, err := next.Execute(ctx, barber.ID)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, domain.Slot{Date: "2099-01-05", Time: "09:00"}, *slot)

	_, err = create.Execute(ctx, CreateAppointmentInput{
		Customer: guest(t), BarberID: barber.ID, ServiceID: service.ID,
		Date: "2099-01-05", Time: "09:00",
	})
	require.NoError(t, err)

	slot, err = next.Execute(ctx, barber.ID)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "09:30", slot.Time)

	// A barber with no calendar has no next slot.
	slot, err = next.Execute(ctx, barber.ID+1)
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestCancelReleasesSlot(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)

	create := NewCreateAppointment(repo, notify.NewDispatcher(""))
	cancel := NewCancelAppointment(repo)
	slots := NewGetAvailableSlots(repo)

	ctx := context.Background()

	ap, err := create.Execute(ctx, CreateAppointmentInput{
		Customer: guest(t), BarberID: barber.ID, ServiceID: service.ID,
		Date: "2099-01-05", Time: "10:00",
	})
	require.NoError(t, err)

	staff := identity.Actor{UserID: 99, Role: identity.RoleBarber}
	cancelled, err := cancel.Execute(ctx, staff, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	times, err := slots.Execute(ctx, barber.ID, "2099-01-05")
	require.NoError(t, err)
	assert.Contains(t, times, "10:00")
}

func TestCancelPermissions(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)

	create := NewCreateAppointment(repo, notify.NewDispatcher(""))
	cancel := NewCancelAppointment(repo)

	ctx := context.Background()

	owner := models.Profile{Email: "own@example.com", PasswordHash: "x", FullName: "Owner", Role: identity.RoleCustomer}
	require.NoError(t, db.Create(&owner).Error)

	ap, err := create.Execute(ctx, CreateAppointmentInput{
		Customer: domain.RegisteredCustomer(owner.ID),
		BarberID: barber.ID, ServiceID: service.ID,
		Date: "2099-01-05", Time: "09:00",
	})
	require.NoError(t, err)

	stranger := identity.Actor{UserID: owner.ID + 1, Role: identity.RoleCustomer}
	_, err = cancel.Execute(ctx, stranger, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	self := identity.Actor{UserID: owner.ID, Role: identity.RoleCustomer}
	_, err = cancel.Execute(ctx, self, ap.ID)
	require.NoError(t, err)
}

func TestCompleteAwardsLoyaltyPoints(t *testing.T) {
	db := newTestDB(t)
	barber, service := seedCalendar(t, db)
	repo := infraRepo.NewBookingGormRepository(db)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(db)

	create := NewCreateAppointment(repo, notify.NewDispatcher(""))
	complete := NewCompleteAppointment(repo, ucLoyalty.NewAwardPoints(loyaltyRepo))

	ctx := context.Background()

	user := models.Profile{Email: "loyal@example.com", PasswordHash: "x", FullName: "Loyal", Role: identity.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	ap, err := create.Execute(ctx, CreateAppointmentInput{
		Customer: domain.RegisteredCustomer(user.ID),
		BarberID: barber.ID, ServiceID: service.ID,
		Date: "2099-01-05", Time: "09:00",
	})
	require.NoError(t, err)

	staff := identity.Actor{UserID: 1, Role: identity.RoleAdmin}
	done, err := complete.Execute(ctx, staff, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)

	// $75 service: floor(75/10)*10 = 70 points.
	lp, err := loyaltyRepo.GetPoints(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, lp)
	assert.Equal(t, 70, lp.PointsBalance)
	assert.Equal(t, 70, lp.LifetimePoints)

	customer := identity.Actor{UserID: user.ID, Role: identity.RoleCustomer}
	_, err = complete.Execute(ctx, customer, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}
