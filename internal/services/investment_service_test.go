package services

import (
	"testing"
	"time"

	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/testutil"
	"github.com/chloegtg3005/moneyTrusted/internal/uuid"
)

func TestOpen(t *testing.T) {
	t.Run("debits_price_and_records_purchase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := NewWalletService(db, NewUserService(db), 100000, 100000)
		svc := NewInvestmentService(db, NewCatalogService(db), wallet)

		user := testutil.CreateTestUserWithBalance(t, db, 500000)
		product := testutil.CreateTestProduct(t, db, 200000, 6500, 30)

		investment, err := svc.Open(user.ID, product.ID)
		testutil.AssertNoError(t, err)

		if investment.ID == "" {
			t.Fatal("expected non-empty investment ID")
		}
		if investment.DaysPaid != 0 {
			t.Errorf("expected 0 days paid, got %d", investment.DaysPaid)
		}
		if investment.NextPayoutAt != nil {
			t.Error("expected payout schedule to start unset")
		}
		if investment.Finished {
			t.Error("expected investment to start active")
		}

		var fresh models.User
		db.First(&fresh, "id = ?", user.ID)
		if fresh.Balance != 300000 {
			t.Errorf("expected balance 300000, got %d", fresh.Balance)
		}

		var entry models.Transaction
		db.Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeBuy).First(&entry)
		if entry.Amount != 200000 {
			t.Errorf("expected buy entry amount 200000, got %d", entry.Amount)
		}
		if entry.Status != models.TransactionStatusSuccess {
			t.Errorf("expected buy entry success, got %s", entry.Status)
		}
	})

	t.Run("insufficient_balance_leaves_no_trace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := NewWalletService(db, NewUserService(db), 100000, 100000)
		svc := NewInvestmentService(db, NewCatalogService(db), wallet)

		user := testutil.CreateTestUserWithBalance(t, db, 100000)
		product := testutil.CreateTestProduct(t, db, 200000, 6500, 30)

		_, err := svc.Open(user.ID, product.ID)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		var fresh models.User
		db.First(&fresh, "id = ?", user.ID)
		if fresh.Balance != 100000 {
			t.Errorf("expected balance unchanged at 100000, got %d", fresh.Balance)
		}

		var invCount, txCount int64
		db.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&invCount)
		db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount)
		if invCount != 0 {
			t.Errorf("expected no investment rows, got %d", invCount)
		}
		if txCount != 0 {
			t.Errorf("expected no ledger entries, got %d", txCount)
		}
	})

	t.Run("unknown_product", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := NewWalletService(db, NewUserService(db), 100000, 100000)
		svc := NewInvestmentService(db, NewCatalogService(db), wallet)

		user := testutil.CreateTestUserWithBalance(t, db, 500000)

		_, err := svc.Open(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "PRODUCT_NOT_FOUND")
	})
}

func TestListActive(t *testing.T) {
	t.Run("excludes_finished_and_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := NewWalletService(db, NewUserService(db), 100000, 100000)
		svc := NewInvestmentService(db, NewCatalogService(db), wallet)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		product := testutil.CreateTestProduct(t, db, 100000, 3000, 30)

		now := time.Now()
		active := testutil.CreateTestInvestment(t, db, user.ID, product.ID, now)
		finished := testutil.CreateTestInvestment(t, db, user.ID, product.ID, now)
		db.Model(finished).Update("finished", true)
		testutil.CreateTestInvestment(t, db, other.ID, product.ID, now)

		investments, err := svc.ListActive(user.ID)
		testutil.AssertNoError(t, err)

		if len(investments) != 1 {
			t.Fatalf("expected 1 active investment, got %d", len(investments))
		}
		if investments[0].ID != active.ID {
			t.Errorf("expected investment %s, got %s", active.ID, investments[0].ID)
		}
	})

	t.Run("oldest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := NewWalletService(db, NewUserService(db), 100000, 100000)
		svc := NewInvestmentService(db, NewCatalogService(db), wallet)

		user := testutil.CreateTestUser(t, db)
		product := testutil.CreateTestProduct(t, db, 100000, 3000, 30)

		now := time.Now()
		newer := testutil.CreateTestInvestment(t, db, user.ID, product.ID, now)
		older := testutil.CreateTestInvestment(t, db, user.ID, product.ID, now.AddDate(0, 0, -5))

		investments, err := svc.ListActive(user.ID)
		testutil.AssertNoError(t, err)

		if len(investments) != 2 {
			t.Fatalf("expected 2 investments, got %d", len(investments))
		}
		if investments[0].ID != older.ID || investments[1].ID != newer.ID {
			t.Error("expected investments ordered oldest first")
		}
	})
}
