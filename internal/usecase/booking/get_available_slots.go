package booking

import (
	"context"
	"time"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute returns the ordered free times for a barber/date. Empty
// inputs yield an empty list, not an error, and results are always
// read fresh, never cached.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	if barberID == 0 || date == "" {
		return []string{}, nil
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	times, err := uc.repo.ListFreeSlotTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	if times == nil {
		times = []string{}
	}
	return times, nil
}
