package loyalty

import (
	"context"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/loyalty"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
)

type RedeemPoints struct {
	repo domain.Repository
}

func NewRedeemPoints(repo domain.Repository) *RedeemPoints {
	return &RedeemPoints{repo: repo}
}

// Execute spends balance. Redemption never touches lifetime points, so
// a user's tier cannot drop by redeeming.
func (uc *RedeemPoints) Execute(
	ctx context.Context,
	userID uint,
	points int,
	description string,
) error {

	if points <= 0 {
		return httperr.ErrBusiness("invalid_points")
	}

	return uc.repo.Redeem(ctx, userID, points, description)
}
