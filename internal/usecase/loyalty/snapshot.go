package loyalty

import (
	"context"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/loyalty"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

const transactionHistoryLimit = 20

// Snapshot is what the loyalty card renders: balance, lifetime, the
// tier derived from lifetime and the progress to the next one.
type Snapshot struct {
	PointsBalance    int             `json:"points_balance"`
	LifetimePoints   int             `json:"lifetime_points"`
	Tier             domain.Tier     `json:"tier"`
	Benefits         domain.Benefits `json:"benefits"`
	PointsToNextTier int             `json:"points_to_next_tier"`
}

type GetSnapshot struct {
	repo domain.Repository
}

func NewGetSnapshot(repo domain.Repository) *GetSnapshot {
	return &GetSnapshot{repo: repo}
}

// Execute loads the user's loyalty state. A user without a loyalty row
// yet gets the zero bronze snapshot, not an error. The tier is always
// recomputed from lifetime points; the stored column is never trusted.
func (uc *GetSnapshot) Execute(
	ctx context.Context,
	userID uint,
) (*Snapshot, error) {

	lp, err := uc.repo.GetPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	var balance, lifetime int
	if lp != nil {
		balance = lp.PointsBalance
		lifetime = lp.LifetimePoints
	}

	tier := domain.TierFor(lifetime)

	return &Snapshot{
		PointsBalance:    balance,
		LifetimePoints:   lifetime,
		Tier:             tier,
		Benefits:         domain.TierBenefits(tier),
		PointsToNextTier: domain.PointsToNextTier(lifetime),
	}, nil
}

type ListTransactions struct {
	repo domain.Repository
}

func NewListTransactions(repo domain.Repository) *ListTransactions {
	return &ListTransactions{repo: repo}
}

func (uc *ListTransactions) Execute(
	ctx context.Context,
	userID uint,
) ([]models.LoyaltyTransaction, error) {
	return uc.repo.ListTransactions(ctx, userID, transactionHistoryLimit)
}
