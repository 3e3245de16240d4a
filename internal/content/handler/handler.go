package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/auth"
	"github.com/glowmart/admin-service/internal/content"
	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

type ContentHandler struct {
	uc     content.UseCase
	logger logger.ZapLogger
}

func NewContentHandler(uc content.UseCase, log logger.ZapLogger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: log}
}

func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var input dto.SaveBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	b, err := h.uc.CreateBanner(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to create banner")
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *ContentHandler) GetBanner(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	b, err := h.uc.GetBanner(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get banner")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *ContentHandler) ListBanners(c *gin.Context) {
	filters := &dto.BannerFilters{
		UserID:   auth.GetUserID(c.Request.Context()),
		Position: c.Query("position"),
	}
	if v, ok := c.GetQuery("is_active"); ok {
		active := v == "true"
		filters.IsActive = &active
	}

	banners, err := h.uc.ListBanners(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list banners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	var input dto.SaveBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	b, err := h.uc.UpdateBanner(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to update banner")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeleteBanner(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete banner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var input dto.SavePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = auth.GetUserID(c.Request.Context())

	p, err := h.uc.CreatePost(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	p, err := h.uc.GetPost(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	filters := &dto.PostFilters{
		UserID:      auth.GetUserID(c.Request.Context()),
		Tag:         c.Query("tag"),
		SearchQuery: c.Query("q"),
	}
	if v, ok := c.GetQuery("is_published"); ok {
		published := v == "true"
		filters.IsPublished = &published
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	posts, err := h.uc.ListPosts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var input dto.SavePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")
	input.UserID = auth.GetUserID(c.Request.Context())

	p, err := h.uc.UpdatePost(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err, "failed to update post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	userID := auth.GetUserID(c.Request.Context())
	if err := h.uc.DeletePost(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("failed to delete post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) PublishPost(c *gin.Context) {
	h.setPublished(c, true)
}

func (h *ContentHandler) UnpublishPost(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *ContentHandler) setPublished(c *gin.Context, publish bool) {
	userID := auth.GetUserID(c.Request.Context())
	p, err := h.uc.PublishPost(c.Request.Context(), userID, c.Param("id"), publish)
	if err != nil {
		h.respondError(c, err, "failed to change post publication")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ContentHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
