package loyalty

import (
	"context"
	"fmt"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/loyalty"
)

type AwardPoints struct {
	repo domain.Repository
}

func NewAwardPoints(repo domain.Repository) *AwardPoints {
	return &AwardPoints{repo: repo}
}

// Execute credits floor(price/10)*10 points for a completed
// appointment. A computed value of zero or less is a no-op success and
// leaves no ledger entry.
func (uc *AwardPoints) Execute(
	ctx context.Context,
	userID uint,
	appointmentID *uint,
	servicePrice float64,
) error {

	points := domain.PointsFor(servicePrice)
	if points <= 0 {
		return nil
	}

	description := fmt.Sprintf("Points earned from appointment ($%.2f)", servicePrice)

	return uc.repo.Award(ctx, userID, points, appointmentID, description)
}
