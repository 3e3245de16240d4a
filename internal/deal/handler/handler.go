package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/deal"
	"github.com/glowmart/admin-service/internal/deal/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

type DealHandler struct {
	uc     deal.UseCase
	logger logger.ZapLogger
}

func NewDealHandler(uc deal.UseCase, log logger.ZapLogger) *DealHandler {
	return &DealHandler{uc: uc, logger: log}
}

func (h *DealHandler) Create(c *gin.Context) {
	var input dto.CreateDealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	view, err := h.uc.CreateDeal(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to create deal")
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *DealHandler) Get(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	view, err := h.uc.GetDeal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get deal")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DealHandler) List(c *gin.Context) {
	filters := &dto.DealFilters{
		UserID:    auth.GetUserID(c.Request.Context()),
		ProductID: c.Query("product_id"),
	}
	if v, ok := c.GetQuery("is_active"); ok {
		active := v == "true"
		filters.IsActive = &active
	}
	if v, ok := c.GetQuery("featured"); ok {
		featured := v == "true"
		filters.Featured = &featured
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	views, total, err := h.uc.ListDeals(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list deals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": views, "total": total})
}

func (h *DealHandler) Update(c *gin.Context) {
	var input dto.UpdateDealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	view, err := h.uc.UpdateDeal(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to update deal")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DealHandler) Toggle(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	view, err := h.uc.ToggleActive(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to toggle deal")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DealHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteDeal(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete deal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DealHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, deal.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, deal.ErrInvalidPricing), errors.Is(err, deal.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
