package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/loyalty"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

func (r *LoyaltyGormRepository) GetPoints(
	ctx context.Context,
	userID uint,
) (*models.LoyaltyPoints, error) {

	var lp models.LoyaltyPoints
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&lp).Error

	// A user with no loyalty row yet is a normal state, not a fault.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &lp, nil
}

func (r *LoyaltyGormRepository) ListTransactions(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.LoyaltyTransaction, error) {

	var txs []models.LoyaltyTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}

// Award increments balance and lifetime in place so concurrent awards
// for the same user cannot lose updates, then recomputes the stored
// tier from the fresh lifetime value and appends the ledger entry.
func (r *LoyaltyGormRepository) Award(
	ctx context.Context,
	userID uint,
	points int,
	appointmentID *uint,
	description string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.LoyaltyPoints{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"points_balance":  gorm.Expr("points_balance + ?", points),
				"lifetime_points": gorm.Expr("lifetime_points + ?", points),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// First award for this user: seed the row.
			lp := models.LoyaltyPoints{
				UserID:         userID,
				PointsBalance:  points,
				LifetimePoints: points,
				Tier:           string(domain.TierFor(points)),
			}
			if err := tx.Create(&lp).Error; err != nil {
				return err
			}
		} else {
			var lp models.LoyaltyPoints
			if err := tx.Where("user_id = ?", userID).First(&lp).Error; err != nil {
				return err
			}
			if err := tx.Model(&lp).
				Update("tier", string(domain.TierFor(lp.LifetimePoints))).Error; err != nil {
				return err
			}
		}

		entry := models.LoyaltyTransaction{
			UserID:        userID,
			AppointmentID: appointmentID,
			Points:        points,
			Type:          "earned",
			Description:   description,
		}
		return tx.Create(&entry).Error
	})
}

// Redeem spends balance with a conditional decrement; lifetime points
// and tier are untouched. Zero affected rows means the balance does not
// cover the request and nothing is mutated.
func (r *LoyaltyGormRepository) Redeem(
	ctx context.Context,
	userID uint,
	points int,
	description string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.LoyaltyPoints{}).
			Where("user_id = ? AND points_balance >= ?", userID, points).
			Update("points_balance", gorm.Expr("points_balance - ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("insufficient_points")
		}

		entry := models.LoyaltyTransaction{
			UserID:      userID,
			Points:      -points,
			Type:        "redeemed",
			Description: description,
		}
		return tx.Create(&entry).Error
	})
}

// Compile-time check
var _ domain.Repository = (*LoyaltyGormRepository)(nil)
