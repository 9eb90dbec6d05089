package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chloegtg3005/moneyTrusted/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, a unique identifier,
// and zero balance.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithBalance(t, db, 0)
}

// CreateTestUserWithBalance creates a user with the given balance.
func CreateTestUserWithBalance(t *testing.T, db *gorm.DB, balance int64) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Identifier: fmt.Sprintf("user%d@test.com", nextID()),
		Password:   string(hash),
		InviteCode: fmt.Sprintf("INV-%06d", nextID()),
		Balance:    balance,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// SetTestPayoutAccount stores a bank payout destination on the user.
func SetTestPayoutAccount(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	user.PayoutAccountType = models.PayoutAccountBank
	user.PayoutAccountNumber = "1234567890"
	user.PayoutAccountName = "Test Holder"
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("failed to set test payout account: %v", err)
	}
}

// CreateTestProduct creates a catalog product with the given economics.
func CreateTestProduct(t *testing.T, db *gorm.DB, price, dailyIncome int64, cycleDays int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        fmt.Sprintf("Test Package %d", nextID()),
		Price:       price,
		DailyIncome: dailyIncome,
		CycleDays:   cycleDays,
		TotalIncome: dailyIncome * int64(cycleDays),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestInvestment creates an unfinished investment started at startAt
// with no payouts evaluated yet.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID, productID string, startAt time.Time) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		UserID:    userID,
		ProductID: productID,
		StartAt:   startAt,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}

// CreateTestPendingTransaction creates a pending ledger entry of the given type.
func CreateTestPendingTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	entry := &models.Transaction{
		UserID: userID,
		Type:   txType,
		Amount: amount,
		Status: models.TransactionStatusPending,
		Note:   fmt.Sprintf("test %s", txType),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return entry
}
