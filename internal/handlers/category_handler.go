package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/models"
	"fintracker/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the request payload for adding or removing
// a category. Both operations address a category by its (type, name) pair.
type CategoryRequest struct {
	Type     models.CategoryType `json:"type" binding:"required,entry_type"`
	Category string              `json:"category" binding:"required"`
}

// ListCategories handles listing all categories grouped by type
// @Summary     List categories
// @Description Get all categories grouped by type, each group ordered by name
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string][]string "Categories grouped by type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AddCategory handles adding a new category
// @Summary     Add a category
// @Description Add a new (type, category) pair
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CategoryRequest true "Category to add"
// @Success     201 {object} MessageResponse "Category added"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.categoryService.AddCategory(req.Type, req.Category); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category added"})
}

// RemoveCategory handles deleting a category
// @Summary     Delete a category
// @Description Delete the matching (type, category) pair
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CategoryRequest true "Category to delete"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [delete]
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.categoryService.RemoveCategory(req.Type, req.Category); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
