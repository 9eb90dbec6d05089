package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/logger"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
)

// payoutService is the lazy payout accrual engine. There is no scheduler:
// accrual happens only when a caller asks for it, as a deterministic catch-up
// of every day boundary crossed since the investment was last evaluated.
type payoutService struct {
	db     *gorm.DB
	wallet WalletServicer
}

// NewPayoutService creates a new PayoutServicer.
func NewPayoutService(db *gorm.DB, wallet WalletServicer) PayoutServicer {
	return &payoutService{db: db, wallet: wallet}
}

// Accrue credits the user for every unpaid day across all of their active
// investments, as of the caller-supplied reference time. Each investment is
// settled in its own row-locked transaction; a failure in one investment is
// logged and skipped without aborting the others. The aggregate is applied
// to the balance as a single increment and returned.
//
// Calling Accrue again before another day boundary elapses is a no-op: the
// advanced schedule leaves nothing due.
func (s *payoutService) Accrue(userID string, now time.Time) (int64, error) {
	var investments []models.Investment
	if err := s.db.
		Where("user_id = ? AND finished = ?", userID, false).
		Order("start_at ASC").
		Find(&investments).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total int64
	for i := range investments {
		credited, err := s.accrueInvestment(investments[i].ID, userID, now)
		if err != nil {
			logger.Get().Warnw("accrual skipped investment",
				"investment_id", investments[i].ID,
				"user_id", userID,
				"error", err.Error(),
			)
			continue
		}
		total += credited
	}

	if total > 0 {
		if err := s.wallet.Credit(s.db, userID, total); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// accrueInvestment settles all days owed on a single investment. The
// investment row is re-read under a row lock so concurrent claims serialize:
// the loser blocks, then sees the advanced cursor and pays nothing. Payout
// ledger entries and the schedule advance commit together or not at all.
func (s *payoutService) accrueInvestment(investmentID, userID string, now time.Time) (int64, error) {
	var credited int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inv models.Investment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", investmentID, userID).
			First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvestmentNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// A concurrent caller may have finished the cycle while we waited
		// on the lock. Completed investments never accrue again.
		if inv.Finished {
			return nil
		}

		var product models.Product
		if err := tx.Where("id = ?", inv.ProductID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Catalog entry is gone; leave the investment untouched.
				return nil
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// The first period is not owed at purchase time; a full day must
		// elapse before the first payout comes due.
		if inv.NextPayoutAt == nil {
			first := inv.StartAt.AddDate(0, 0, 1)
			inv.NextPayoutAt = &first
		}

		for !inv.Finished && !inv.NextPayoutAt.After(now) {
			entry := &models.Transaction{
				UserID: userID,
				Type:   models.TransactionTypePayout,
				Amount: product.DailyIncome,
				Status: models.TransactionStatusSuccess,
				Note:   fmt.Sprintf("Payout %s", product.Name),
			}
			if err := tx.Create(entry).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			credited += product.DailyIncome
			inv.DaysPaid++

			if inv.DaysPaid >= product.CycleDays {
				inv.Finished = true
			} else {
				// Calendar-day arithmetic, not fixed 24h, so accumulated
				// catch-up does not drift across DST transitions.
				next := inv.NextPayoutAt.AddDate(0, 0, 1)
				inv.NextPayoutAt = &next
			}
		}

		// Persist the schedule even when nothing came due, so the cursor
		// initialization above sticks.
		updates := map[string]interface{}{
			"days_paid":      inv.DaysPaid,
			"next_payout_at": inv.NextPayoutAt,
			"finished":       inv.Finished,
		}
		if err := tx.Model(&models.Investment{}).Where("id = ?", inv.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return credited, nil
}
