package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
)

// adminService resolves pending topup/withdraw transactions. It is the
// mutation hook for the external admin confirmation workflow; the core never
// triggers these transitions itself.
type adminService struct {
	db     *gorm.DB
	wallet WalletServicer
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(db *gorm.DB, wallet WalletServicer) AdminServicer {
	return &adminService{db: db, wallet: wallet}
}

// ConfirmTopup credits the user and marks the top-up successful. The credit
// and the status change commit as one unit.
func (s *adminService) ConfirmTopup(transactionID string) (*models.Transaction, error) {
	return s.resolve(transactionID, models.TransactionTypeTopup, func(tx *gorm.DB, entry *models.Transaction) error {
		if err := s.wallet.Credit(tx, entry.UserID, entry.Amount); err != nil {
			return err
		}
		entry.Status = models.TransactionStatusSuccess
		entry.Note += " | confirmed"
		return nil
	})
}

// RejectTopup marks the top-up failed. No balance change.
func (s *adminService) RejectTopup(transactionID string) (*models.Transaction, error) {
	return s.resolve(transactionID, models.TransactionTypeTopup, func(tx *gorm.DB, entry *models.Transaction) error {
		entry.Status = models.TransactionStatusFailed
		entry.Note += " | rejected"
		return nil
	})
}

// ConfirmWithdraw debits the user and marks the withdrawal paid. The balance
// may have dropped since the request was made, so the debit is re-validated
// here; an insufficient balance leaves the request pending.
func (s *adminService) ConfirmWithdraw(transactionID string) (*models.Transaction, error) {
	return s.resolve(transactionID, models.TransactionTypeWithdraw, func(tx *gorm.DB, entry *models.Transaction) error {
		if err := s.wallet.Debit(tx, entry.UserID, entry.Amount); err != nil {
			return err
		}
		entry.Status = models.TransactionStatusSuccess
		entry.Note += " | paid"
		return nil
	})
}

// RejectWithdraw marks the withdrawal failed. The balance was never debited
// at request time, so nothing needs to be returned.
func (s *adminService) RejectWithdraw(transactionID string) (*models.Transaction, error) {
	return s.resolve(transactionID, models.TransactionTypeWithdraw, func(tx *gorm.DB, entry *models.Transaction) error {
		entry.Status = models.TransactionStatusFailed
		entry.Note += " | rejected"
		return nil
	})
}

// resolve loads a pending transaction of the expected type under a row lock,
// applies the transition, and saves it. A transaction that has already been
// resolved conflicts instead of being applied twice.
func (s *adminService) resolve(
	transactionID string,
	expectedType models.TransactionType,
	apply func(tx *gorm.DB, entry *models.Transaction) error,
) (*models.Transaction, error) {
	var entry models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND type = ?", transactionID, expectedType).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTransactionNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if entry.Status != models.TransactionStatusPending {
			return apperrors.ErrTransactionResolved
		}

		if err := apply(tx, &entry); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status": entry.Status,
			"note":   entry.Note,
		}
		if err := tx.Model(&models.Transaction{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
