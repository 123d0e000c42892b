package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/services"
)

// BudgetHandler handles monthly budget requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for setting the
// current month's ceiling. Pointer so an explicit zero passes required.
type SetBudgetRequest struct {
	TotalBudget *float64 `json:"total_budget" binding:"required"`
}

// BudgetResponse represents the current month's ceiling.
type BudgetResponse struct {
	TotalBudget float64 `json:"total_budget"`
}

// GetBudget handles reading the current month's ceiling
// @Summary     Get budget
// @Description Get the budget ceiling for the current month; reports the default when unset
// @Tags        budget
// @Produce     json
// @Success     200 {object} BudgetResponse "Current month's budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	totalBudget, err := h.budgetService.GetBudget()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_budget": totalBudget})
}

// SetBudget handles replacing the current month's ceiling
// @Summary     Set budget
// @Description Set the budget ceiling for the current month, replacing any prior value
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "Budget ceiling"
// @Success     201 {object} MessageResponse "Budget set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.budgetService.SetBudget(*req.TotalBudget); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Budget set successfully"})
}

// ResetMonthly handles the reserved monthly reset endpoint
// @Summary     Reset monthly budget
// @Description Reserved for a future reset workflow; currently changes nothing
// @Tags        budget
// @Produce     json
// @Success     200 {object} MessageResponse "Reset acknowledged"
// @Router      /budget/reset-monthly [post]
func (h *BudgetHandler) ResetMonthly(c *gin.Context) {
	if err := h.budgetService.ResetMonthly(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Monthly budget reset successfully"})
}
