package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestWalletFlow_TopupConfirm(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "topup@test.com", "password123")

	// A pending top-up does not move the balance.
	rec := app.request("POST", "/api/v1/wallet/topup", `{"amount":150000,"method":"dana"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("topup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	entry := result["transaction"].(map[string]interface{})
	if entry["status"] != "pending" {
		t.Errorf("expected pending status, got %v", entry["status"])
	}
	if got := app.balance(t, token); got != 0 {
		t.Errorf("expected balance 0 before confirmation, got %d", got)
	}

	// Admin confirmation credits the amount.
	txID := entry["id"].(string)
	rec = app.adminRequest("POST", "/api/v1/admin/topups/"+txID+"/confirm")
	if rec.Code != http.StatusOK {
		t.Fatalf("confirmation failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := app.balance(t, token); got != 150000 {
		t.Errorf("expected balance 150000 after confirmation, got %d", got)
	}

	// Confirming again conflicts and does not credit twice.
	rec = app.adminRequest("POST", "/api/v1/admin/topups/"+txID+"/confirm")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double confirm, got %d", rec.Code)
	}
	if got := app.balance(t, token); got != 150000 {
		t.Errorf("expected balance unchanged at 150000, got %d", got)
	}
}

func TestWalletFlow_TopupReject(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "reject@test.com", "password123")

	rec := app.request("POST", "/api/v1/wallet/topup", `{"amount":150000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("topup failed: %d %s", rec.Code, rec.Body.String())
	}
	entry := parseJSON(t, rec)["transaction"].(map[string]interface{})
	txID := entry["id"].(string)

	rec = app.adminRequest("POST", "/api/v1/admin/topups/"+txID+"/reject")
	if rec.Code != http.StatusOK {
		t.Fatalf("rejection failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := app.balance(t, token); got != 0 {
		t.Errorf("expected balance 0 after rejection, got %d", got)
	}
}

func TestWalletFlow_WithdrawLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "withdraw@test.com", "password123")
	app.topupAndConfirm(t, token, 500000)

	// Withdrawals require a payout account on file.
	rec := app.request("POST", "/api/v1/wallet/withdraw", `{"amount":200000}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without payout account, got %d", rec.Code)
	}

	rec = app.request("PUT", "/api/v1/profile/payout-account",
		`{"type":"bank","number":"1234567890","name":"Holder"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("setting payout account failed: %d %s", rec.Code, rec.Body.String())
	}

	// The request validates the balance but does not debit it.
	rec = app.request("POST", "/api/v1/wallet/withdraw", `{"amount":200000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("withdraw failed: %d %s", rec.Code, rec.Body.String())
	}
	entry := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if got := app.balance(t, token); got != 500000 {
		t.Errorf("expected balance 500000 while pending, got %d", got)
	}

	// Confirmation debits the amount.
	txID := entry["id"].(string)
	rec = app.adminRequest("POST", "/api/v1/admin/withdrawals/"+txID+"/confirm")
	if rec.Code != http.StatusOK {
		t.Fatalf("withdraw confirmation failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := app.balance(t, token); got != 300000 {
		t.Errorf("expected balance 300000 after payout, got %d", got)
	}
}

func TestWalletFlow_History(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "history@test.com", "password123")
	app.topupAndConfirm(t, token, 300000)

	rec := app.request("GET", "/api/v1/wallet/history", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	// Registration entry plus the confirmed top-up.
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(data))
	}
	if result["total_items"] != float64(2) {
		t.Errorf("expected total_items 2, got %v", result["total_items"])
	}
}

func TestWalletFlow_MinimumAmounts(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "minimums@test.com", "password123")

	rec := app.request("POST", "/api/v1/wallet/topup", `{"amount":99999}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for topup below minimum, got %d", rec.Code)
	}

	app.topupAndConfirm(t, token, 500000)
	app.request("PUT", "/api/v1/profile/payout-account",
		`{"type":"bank","number":"1234567890","name":"Holder"}`, token)

	rec = app.request("POST", "/api/v1/wallet/withdraw", fmt.Sprintf(`{"amount":%d}`, 99999), token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for withdrawal below minimum, got %d", rec.Code)
	}
}
