package models

import "time"

// Investment represents one purchase of a Product by a User, together with
// its payout schedule state.
//
// NextPayoutAt is NULL until the accrual engine first evaluates the
// investment; afterwards it always points at the next unpaid day's due
// moment and advances by exactly one calendar day per paid period.
// Finished is terminal: once DaysPaid reaches the product's CycleDays no
// further payouts are ever accrued.
type Investment struct {
	Base
	UserID       string     `gorm:"type:uuid;not null;index:idx_investments_user_active" json:"user_id"`
	ProductID    string     `gorm:"type:uuid;not null" json:"product_id"`
	StartAt      time.Time  `gorm:"not null" json:"start_at"`
	DaysPaid     int        `gorm:"not null;default:0" json:"days_paid"`
	NextPayoutAt *time.Time `json:"next_payout_at,omitempty"`
	Finished     bool       `gorm:"not null;default:false;index:idx_investments_user_active" json:"finished"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
