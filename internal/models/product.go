package models

// Product is a catalog entry: a fixed-price package that pays DailyIncome
// every day for CycleDays days. TotalIncome = DailyIncome * CycleDays.
type Product struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"type:bigint;not null" json:"price"`
	DailyIncome int64  `gorm:"type:bigint;not null" json:"daily_income"`
	CycleDays   int    `gorm:"not null" json:"cycle_days"`
	TotalIncome int64  `gorm:"type:bigint;not null" json:"total_income"`
	Image       string `json:"image,omitempty"`
}
