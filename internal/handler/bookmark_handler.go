package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/service"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

type BookmarkToggleReq struct {
	ResourceID   uint64 `json:"resource_id" binding:"required"`
	ResourceType string `json:"resource_type" binding:"required"`
}

func (h *BookmarkHandler) Toggle(c *gin.Context) {
	var req BookmarkToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	bookmarked, err := h.svc.Toggle(c.Request.Context(), identityFrom(c), req.ResourceID, req.ResourceType)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
