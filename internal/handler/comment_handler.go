package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type ContentReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	postID, ok := idParam(c)
	if !ok {
		return
	}
	var req ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), identityFrom(c), postID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": comment.ID})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.UpdateComment(c.Request.Context(), identityFrom(c), id, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), identityFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := idParam(c)
	if !ok {
		return
	}
	list, err := h.svc.ListByPost(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *CommentHandler) AddReply(c *gin.Context) {
	commentID, ok := idParam(c)
	if !ok {
		return
	}
	var req ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	reply, err := h.svc.AddReply(c.Request.Context(), identityFrom(c), commentID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": reply.ID})
}

func (h *CommentHandler) UpdateReply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.UpdateReply(c.Request.Context(), identityFrom(c), id, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommentHandler) DeleteReply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteReply(c.Request.Context(), identityFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *CommentHandler) ListReplies(c *gin.Context) {
	commentID, ok := idParam(c)
	if !ok {
		return
	}
	list, err := h.svc.ListReplies(c.Request.Context(), commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
