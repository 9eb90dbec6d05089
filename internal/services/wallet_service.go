package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/pagination"
)

// walletService owns every mutation of the user balance and the pending
// topup/withdraw surface. Minimum amounts are injected at construction so
// no threshold lives in code.
type walletService struct {
	db          *gorm.DB
	userService UserServicer
	minTopup    int64
	minWithdraw int64
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB, userService UserServicer, minTopup, minWithdraw int64) WalletServicer {
	return &walletService{
		db:          db,
		userService: userService,
		minTopup:    minTopup,
		minWithdraw: minWithdraw,
	}
}

// Credit atomically increases a user's balance. It runs on the given
// transaction handle so callers can commit it together with a ledger entry.
func (s *walletService) Credit(tx *gorm.DB, userID string, amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "credit amount must be greater than zero")
	}

	result := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Debit atomically decreases a user's balance. The decrement is conditional
// on the current balance covering the amount, so concurrent debits cannot
// drive the balance negative.
func (s *walletService) Debit(tx *gorm.DB, userID string, amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "debit amount must be greater than zero")
	}

	result := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the user does not exist or the balance check failed.
		// The re-check must run on the same transaction handle; a lookup
		// through another connection would read outside the open transaction.
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return apperrors.ErrUserNotFound
		}
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

// Topup creates a pending top-up request. The balance is only credited once
// an admin confirms the payment.
func (s *walletService) Topup(userID string, amount int64, method string) (*models.Transaction, error) {
	if amount < s.minTopup {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("minimum top-up is %d", s.minTopup))
	}

	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}

	if method == "" {
		method = "seabank"
	}

	entry := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeTopup,
		Amount: amount,
		Status: models.TransactionStatusPending,
		Note:   fmt.Sprintf("Method: %s", method),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// Withdraw creates a pending withdrawal request. The balance is validated up
// front but only debited when an admin confirms the payout, so a rejected
// request never needs a compensating credit.
func (s *walletService) Withdraw(userID string, amount int64) (*models.Transaction, error) {
	if amount < s.minWithdraw {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("minimum withdrawal is %d", s.minWithdraw))
	}

	user, err := s.userService.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.HasPayoutAccount() {
		return nil, apperrors.ErrNoPayoutAccount
	}
	if user.Balance < amount {
		return nil, apperrors.ErrInsufficientFunds
	}

	entry := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionTypeWithdraw,
		Amount: amount,
		Status: models.TransactionStatusPending,
		Note: fmt.Sprintf("Withdraw to %s • %s • %s",
			user.PayoutAccountType, user.PayoutAccountNumber, user.PayoutAccountName),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// History returns the user's ledger entries, newest first, optionally
// filtered to a single entry type.
func (s *walletService) History(userID, txType string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if txType != "" {
		base = base.Where("type = ?", txType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
