// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// topupMethods are the payment channels a top-up may be made through.
var topupMethods = map[string]bool{
	"seabank": true,
	"bca":     true,
	"bri":     true,
	"dana":    true,
	"ovo":     true,
	"gopay":   true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ledger_type", validateLedgerType)
		_ = v.RegisterValidation("payout_account_type", validatePayoutAccountType)
		_ = v.RegisterValidation("topup_method", validateTopupMethod)
	}
}

func validateLedgerType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "topup", "withdraw", "buy", "payout":
		return true
	}
	return false
}

func validatePayoutAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "bank", "ewallet":
		return true
	}
	return false
}

func validateTopupMethod(fl validator.FieldLevel) bool {
	return topupMethods[fl.Field().String()]
}
