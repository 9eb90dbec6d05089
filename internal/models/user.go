package models

// PayoutAccountType is the kind of destination withdrawals are paid to.
type PayoutAccountType string

const (
	PayoutAccountBank    PayoutAccountType = "bank"
	PayoutAccountEwallet PayoutAccountType = "ewallet"
)

// User represents the user model in the database. Balance is held in the
// smallest currency unit and is only ever mutated through the wallet service.
type User struct {
	Base
	Identifier string `gorm:"uniqueIndex;not null" json:"identifier"`
	Password   string `gorm:"not null" json:"-"`
	InviteCode string `gorm:"not null" json:"invite_code"`
	Balance    int64  `gorm:"type:bigint;not null;default:0" json:"balance"`

	// Withdrawal destination; unset until the user registers one.
	PayoutAccountType   PayoutAccountType `json:"payout_account_type,omitempty"`
	PayoutAccountNumber string            `json:"payout_account_number,omitempty"`
	PayoutAccountName   string            `json:"payout_account_name,omitempty"`

	Investments  []Investment  `gorm:"foreignKey:UserID" json:"investments,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}

// HasPayoutAccount reports whether a withdrawal destination is on file.
func (u *User) HasPayoutAccount() bool {
	return u.PayoutAccountType != "" && u.PayoutAccountNumber != "" && u.PayoutAccountName != ""
}
