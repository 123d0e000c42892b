package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/services"
)

// TransactionHandler handles ledger requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// AddTransactionRequest represents the request payload for adding a
// ledger entry. Amount is a pointer so an explicit zero passes the
// required check; its value is otherwise accepted as given, as are
// date, type, and category.
type AddTransactionRequest struct {
	Date     string   `json:"date" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Notes    *string  `json:"notes"`
}

// ListTransactions handles listing every ledger entry
// @Summary     List transactions
// @Description Get all transactions. The result carries no ordering guarantee.
// @Tags        transactions
// @Produce     json
// @Success     200 {array} models.Transaction "All transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// AddTransaction handles appending a ledger entry
// @Summary     Add a transaction
// @Description Append a transaction; the store assigns the id
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body AddTransactionRequest true "Transaction details"
// @Success     201 {object} MessageResponse "Transaction added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.transactionService.AddTransaction(req.Date, req.Type, req.Category, *req.Amount, req.Notes); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transaction added"})
}

// DeleteTransaction handles deleting one ledger entry by id
// @Summary     Delete a transaction
// @Description Delete the transaction with the given id; succeeds even when no row matches
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// DeleteAllTransactions handles clearing the ledger
// @Summary     Delete all transactions
// @Description Remove every transaction. Irreversible.
// @Tags        transactions
// @Produce     json
// @Success     200 {object} MessageResponse "All transactions deleted"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [delete]
func (h *TransactionHandler) DeleteAllTransactions(c *gin.Context) {
	if err := h.transactionService.DeleteAllTransactions(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All transactions deleted"})
}
