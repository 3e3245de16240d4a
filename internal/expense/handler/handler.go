package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/expense"
	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	uc     expense.UseCase
	logger logger.ZapLogger
}

func NewExpenseHandler(uc expense.UseCase, log logger.ZapLogger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, logger: log}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var input dto.SaveExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	e, err := h.uc.CreateExpense(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	e, err := h.uc.GetExpense(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get expense")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	filters := h.filtersFromQuery(c)

	expenses, err := h.uc.ListExpenses(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *ExpenseHandler) Analytics(c *gin.Context) {
	filters := h.filtersFromQuery(c)

	view, err := h.uc.Analytics(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to compute expense analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var input dto.SaveExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	e, err := h.uc.UpdateExpense(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to update expense")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteExpense(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete expense", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	category, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create expense category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	categories, err := h.uc.ListCategories(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list expense categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteCategory(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete expense category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) filtersFromQuery(c *gin.Context) *dto.ExpenseFilters {
	filters := &dto.ExpenseFilters{
		UserID:        auth.GetUserID(c.Request.Context()),
		CategoryID:    c.Query("category_id"),
		PaymentMethod: c.Query("payment_method"),
		DateFrom:      c.Query("date_from"),
		DateTo:        c.Query("date_to"),
		SearchQuery:   c.Query("q"),
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return filters
}

func (h *ExpenseHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, expense.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, expense.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
