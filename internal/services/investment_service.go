package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
)

// investmentService opens product purchases and tracks active investments.
type investmentService struct {
	db      *gorm.DB
	catalog CatalogServicer
	wallet  WalletServicer
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, catalog CatalogServicer, wallet WalletServicer) InvestmentServicer {
	return &investmentService{db: db, catalog: catalog, wallet: wallet}
}

// Open purchases a product for a user: the price debit, the investment row,
// and the buy ledger entry commit as one unit, so a failed debit leaves no
// trace. The payout schedule starts unset; the accrual engine initializes it
// on first evaluation.
func (s *investmentService) Open(userID, productID string) (*models.Investment, error) {
	product, err := s.catalog.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	investment := &models.Investment{
		UserID:       userID,
		ProductID:    product.ID,
		StartAt:      time.Now(),
		DaysPaid:     0,
		NextPayoutAt: nil,
		Finished:     false,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.wallet.Debit(tx, userID, product.Price); err != nil {
			return err
		}

		if err := tx.Create(investment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			UserID: userID,
			Type:   models.TransactionTypeBuy,
			Amount: product.Price,
			Status: models.TransactionStatusSuccess,
			Note:   fmt.Sprintf("Buy %s", product.Name),
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return investment, nil
}

// ListActive returns the user's unfinished investments, oldest first.
func (s *investmentService) ListActive(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.
		Where("user_id = ? AND finished = ?", userID, false).
		Order("start_at ASC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}
