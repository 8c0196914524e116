package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/pos/backend/internal/application/billing"
)

// TransactionHandler handles checkout and receipt endpoints
type TransactionHandler struct {
	BaseHandler
	checkoutService *billingapp.CheckoutService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(checkoutService *billingapp.CheckoutService) *TransactionHandler {
	return &TransactionHandler{checkoutService: checkoutService}
}

// Checkout handles POST /transactions
func (h *TransactionHandler) Checkout(c *gin.Context) {
	var req billingapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	transaction, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, transaction)
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.checkoutService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transaction)
}

// GetByNumber handles GET /transactions/number/:number
func (h *TransactionHandler) GetByNumber(c *gin.Context) {
	transaction, err := h.checkoutService.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transaction)
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter billingapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	page, err := h.checkoutService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// Refund handles POST /transactions/:id/refund
func (h *TransactionHandler) Refund(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.checkoutService.Refund(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transaction)
}
