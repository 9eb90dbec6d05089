package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chloegtg3005/moneyTrusted/internal/config"
	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/pagination"
	"github.com/chloegtg3005/moneyTrusted/internal/services"
)

// WalletHandler handles balance, ledger, and payout claim requests.
type WalletHandler struct {
	walletService services.WalletServicer
	payoutService services.PayoutServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer, payoutService services.PayoutServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService, payoutService: payoutService}
}

// TopupRequest represents the top-up request payload
type TopupRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Method string `json:"method" binding:"omitempty,topup_method"`
}

// WithdrawRequest represents the withdrawal request payload
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// HistoryRequest represents the history query parameters
type HistoryRequest struct {
	pagination.PageRequest
	Type string `form:"type" binding:"omitempty,ledger_type"`
}

// Topup creates a pending top-up request
// @Summary     Request a top-up
// @Description Create a pending top-up; the balance is credited after an admin confirms payment
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TopupRequest true "Amount and payment method"
// @Success     201 {object} map[string]interface{} "Pending top-up with payment instruction"
// @Failure     400 {object} ErrorResponse "Amount below minimum"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/topup [post]
func (h *WalletHandler) Topup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.walletService.Topup(userID, req.Amount, req.Method)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := gin.H{
		"message":     "Top-up requested. Transfer the amount and wait for confirmation.",
		"transaction": entry,
	}
	if va := config.Get().TopupVA; va != "" {
		resp["payment_instruction"] = gin.H{"virtual_account": va}
	}
	c.JSON(http.StatusCreated, resp)
}

// Withdraw creates a pending withdrawal request
// @Summary     Request a withdrawal
// @Description Create a pending withdrawal to the stored payout account; the balance is debited when an admin confirms the payout
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WithdrawRequest true "Amount to withdraw"
// @Success     201 {object} map[string]interface{} "Pending withdrawal"
// @Failure     400 {object} ErrorResponse "Amount below minimum, no payout account, or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.walletService.Withdraw(userID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Withdrawal requested. It will be paid out after review.",
		"transaction": entry,
	})
}

// History returns the user's ledger entries
// @Summary     Transaction history
// @Description List the authenticated user's ledger entries, newest first
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Param       type query string false "Entry type filter" Enums(topup, withdraw, buy, payout)
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Ledger page"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/history [get]
func (h *WalletHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.walletService.History(userID, req.Type, req.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Claim settles all payouts owed across the user's investments
// @Summary     Claim pending payouts
// @Description Credit every daily payout that has come due since the last claim
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Amount credited"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/claim [post]
func (h *WalletHandler) Claim(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	credited, err := h.payoutService.Accrue(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Nothing due yet. Payouts come due one day after purchase and daily after that."
	if credited > 0 {
		message = "Payouts credited to your balance."
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"credited": credited,
	})
}
