package booking

import (
	"context"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/booking"
	"github.com/heritagecuts/barbershop-api/internal/timezone"
)

type GetNextAvailableSlot struct {
	repo domain.Repository
}

func NewGetNextAvailableSlot(repo domain.Repository) *GetNextAvailableSlot {
	return &GetNextAvailableSlot{repo: repo}
}

// Execute returns the earliest free slot at or after today in the shop
// timezone, or nil when the barber has none left.
func (uc *GetNextAvailableSlot) Execute(
	ctx context.Context,
	barberID uint,
) (*domain.Slot, error) {

	if barberID == 0 {
		return nil, nil
	}

	return uc.repo.NextFreeSlot(ctx, barberID, timezone.Today())
}
