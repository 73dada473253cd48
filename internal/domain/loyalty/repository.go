package loyalty

import (
	"context"

	"github.com/heritagecuts/barbershop-api/internal/models"
)

type Repository interface {
	// GetPoints returns nil with no error when the user has no loyalty
	// row yet; absence is not a fault.
	GetPoints(ctx context.Context, userID uint) (*models.LoyaltyPoints, error)

	ListTransactions(
		ctx context.Context,
		userID uint,
		limit int,
	) ([]models.LoyaltyTransaction, error)

	// Award atomically increments balance and lifetime (seeding a row
	// when none exists), recomputes the tier from the new lifetime
	// value and appends the earned ledger entry, all in one
	// transaction.
	Award(
		ctx context.Context,
		userID uint,
		points int,
		appointmentID *uint,
		description string,
	) error

	// Redeem decrements balance only when it covers the requested
	// points and appends the redeemed ledger entry; otherwise fails
	// with ErrBusiness("insufficient_points") and mutates nothing.
	Redeem(
		ctx context.Context,
		userID uint,
		points int,
		description string,
	) error
}
