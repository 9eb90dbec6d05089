package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/services"
)

// AdminHandler resolves pending topup and withdraw transactions. All routes
// are guarded by the admin key middleware.
type AdminHandler struct {
	adminService services.AdminServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService services.AdminServicer) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ConfirmTopup confirms a pending top-up
// @Summary     Confirm a top-up
// @Description Credit the user and mark the top-up successful
// @Tags        admin
// @Produce     json
// @Security    AdminKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Resolved transaction"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/topups/{id}/confirm [post]
func (h *AdminHandler) ConfirmTopup(c *gin.Context) {
	h.resolve(c, h.adminService.ConfirmTopup)
}

// RejectTopup rejects a pending top-up
// @Summary     Reject a top-up
// @Description Mark the top-up failed without crediting the user
// @Tags        admin
// @Produce     json
// @Security    AdminKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Resolved transaction"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/topups/{id}/reject [post]
func (h *AdminHandler) RejectTopup(c *gin.Context) {
	h.resolve(c, h.adminService.RejectTopup)
}

// ConfirmWithdraw confirms a pending withdrawal
// @Summary     Confirm a withdrawal
// @Description Debit the user and mark the withdrawal paid
// @Tags        admin
// @Produce     json
// @Security    AdminKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Resolved transaction"
// @Failure     400 {object} ErrorResponse "Balance no longer covers the amount"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/withdrawals/{id}/confirm [post]
func (h *AdminHandler) ConfirmWithdraw(c *gin.Context) {
	h.resolve(c, h.adminService.ConfirmWithdraw)
}

// RejectWithdraw rejects a pending withdrawal
// @Summary     Reject a withdrawal
// @Description Mark the withdrawal failed; the balance was never debited
// @Tags        admin
// @Produce     json
// @Security    AdminKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Resolved transaction"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdraw(c *gin.Context) {
	h.resolve(c, h.adminService.RejectWithdraw)
}

func (h *AdminHandler) resolve(c *gin.Context, fn func(transactionID string) (*models.Transaction, error)) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := fn(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": entry})
}
