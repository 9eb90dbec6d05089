package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(identifier, password, invite string) (*models.User, error)
	GetUserByIdentifier(identifier string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	SetPayoutAccount(userID string, accountType models.PayoutAccountType, number, name string) (*models.User, error)
	ChangePassword(userID, oldPassword, newPassword string) error
}

// CatalogServicer defines the contract for the product catalog.
type CatalogServicer interface {
	ListProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	SeedDefaults() error
}

// WalletServicer defines the contract for balance mutations and the
// pending-transaction surface. Credit and Debit take the transaction handle
// they must run under so callers can bundle them with their ledger writes.
type WalletServicer interface {
	Credit(tx *gorm.DB, userID string, amount int64) error
	Debit(tx *gorm.DB, userID string, amount int64) error
	Topup(userID string, amount int64, method string) (*models.Transaction, error)
	Withdraw(userID string, amount int64) (*models.Transaction, error)
	History(userID, txType string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// InvestmentServicer defines the contract for opening and listing investments.
type InvestmentServicer interface {
	Open(userID, productID string) (*models.Investment, error)
	ListActive(userID string) ([]models.Investment, error)
}

// PayoutServicer defines the contract for the lazy payout accrual engine.
type PayoutServicer interface {
	Accrue(userID string, now time.Time) (int64, error)
}

// AdminServicer defines the contract for resolving pending transactions.
type AdminServicer interface {
	ConfirmTopup(transactionID string) (*models.Transaction, error)
	RejectTopup(transactionID string) (*models.Transaction, error)
	ConfirmWithdraw(transactionID string) (*models.Transaction, error)
	RejectWithdraw(transactionID string) (*models.Transaction, error)
}
