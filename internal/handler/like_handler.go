package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/service"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

func (h *LikeHandler) TogglePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	liked, err := h.svc.TogglePost(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	liked, err := h.svc.ToggleComment(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *LikeHandler) ToggleReply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	liked, err := h.svc.ToggleReply(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *LikeHandler) IsPostLiked(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	liked, err := h.svc.IsPostLiked(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *LikeHandler) PostCount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	count, err := h.svc.PostLikeCount(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
