package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/supplier"
	"github.com/glowmart/admin-service/internal/supplier/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{uc: uc, logger: log}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var input dto.SaveSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	s, err := h.uc.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	s, err := h.uc.GetSupplier(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get supplier")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) List(c *gin.Context) {
	filters := &dto.SupplierFilters{
		UserID:      auth.GetUserID(c.Request.Context()),
		SearchQuery: c.Query("q"),
	}
	if v, ok := c.GetQuery("is_active"); ok {
		active := v == "true"
		filters.IsActive = &active
	}
	if v, ok := c.GetQuery("min_rating"); ok {
		if rating, err := strconv.Atoi(v); err == nil {
			filters.MinRating = &rating
		}
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	suppliers, err := h.uc.ListSuppliers(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list suppliers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var input dto.SaveSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	s, err := h.uc.UpdateSupplier(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteSupplier(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete supplier", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SupplierHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, supplier.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, supplier.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
