package models

// TransactionType represents the kind of balance-affecting event.
type TransactionType string

const (
	TransactionTypeTopup    TransactionType = "topup"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeBuy      TransactionType = "buy"
	TransactionTypePayout   TransactionType = "payout"
)

// TransactionStatus represents the resolution state of a ledger entry.
// Topups and withdrawals start pending and are resolved by an admin;
// buys and payouts are created already successful.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry. Entries are immutable once
// their status leaves pending, except for the admin note suffix appended
// at resolution time.
type Transaction struct {
	Base
	UserID string            `gorm:"type:uuid;not null;index:idx_transactions_user_created" json:"user_id"`
	Type   TransactionType   `gorm:"not null" json:"type"`
	Amount int64             `gorm:"type:bigint;not null" json:"amount"`
	Status TransactionStatus `gorm:"not null;default:pending" json:"status"`
	Note   string            `json:"note"`
}
