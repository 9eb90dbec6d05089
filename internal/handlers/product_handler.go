package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chloegtg3005/moneyTrusted/internal/services"
)

// ProductHandler handles catalog and purchase requests.
type ProductHandler struct {
	catalogService    services.CatalogServicer
	investmentService services.InvestmentServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService services.CatalogServicer, investmentService services.InvestmentServicer) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, investmentService: investmentService}
}

// ListProducts returns the product catalog
// @Summary     List products
// @Description List all catalog packages ordered by price
// @Tags        products
// @Produce     json
// @Success     200 {object} map[string]interface{} "Product list"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// BuyProduct purchases a product for the authenticated user
// @Summary     Buy a product
// @Description Debit the product price and open an investment; daily income
// @Description is credited lazily whenever payouts are claimed.
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Product ID"
// @Success     201 {object} map[string]interface{} "Investment opened"
// @Failure     400 {object} ErrorResponse "Insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products/{id}/buy [post]
func (h *ProductHandler) BuyProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	productID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.Open(userID, productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Purchase successful: daily income accrues each day and is credited when you claim.",
		"investment": investment,
	})
}

// ListInvestments returns the user's active investments
// @Summary     List active investments
// @Description List the authenticated user's unfinished investments
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Investment list"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *ProductHandler) ListInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.ListActive(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}
