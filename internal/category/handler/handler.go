package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/category"
	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: log}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cat == nil || cat.UserID != auth.GetUserID(c.Request.Context()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	filters := &dto.CategoryFilters{UserID: auth.GetUserID(c.Request.Context())}
	if menuID, ok := c.GetQuery("menu_id"); ok {
		filters.MenuID = &menuID
	}

	cats, err := h.uc.ListCategories(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats, "total": len(cats)})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var input dto.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	cat, err := h.uc.UpdateCategory(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteCategory(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Reorder(c *gin.Context) {
	var input dto.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	cats, err := h.uc.Reorder(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrReorderInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, category.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "index out of range"})
		default:
			h.logger.Error("failed to reorder categories", zap.Error(err))
			// The reloaded list rides along so the client can resync.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "categories": cats})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *CategoryHandler) CreateMenu(c *gin.Context) {
	var input dto.CreateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	m, err := h.uc.CreateMenu(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *CategoryHandler) ListMenus(c *gin.Context) {
	menus, err := h.uc.ListMenus(c.Request.Context(), auth.GetUserID(c.Request.Context()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus, "total": len(menus)})
}

func (h *CategoryHandler) DeleteMenu(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteMenu(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
