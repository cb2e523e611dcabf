package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/service"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type CreatePostReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	post, err := h.svc.Create(c.Request.Context(), identityFrom(c), req.CommunityID, req.Title, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID, "slug": post.Slug})
}

type UpdatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Update(c.Request.Context(), identityFrom(c), id, req.Title, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), identityFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListByCommunity prefers cursor paging; page/size is the fallback.
func (h *PostHandler) ListByCommunity(c *gin.Context) {
	communityID, ok := idParam(c)
	if !ok {
		return
	}

	lastIDStr := c.Query("last_id")
	lastTSStr := c.Query("last_created_at")
	if lastIDStr != "" || lastTSStr != "" {
		lastID, _ := strconv.ParseUint(lastIDStr, 10, 64)
		lastTS, _ := strconv.ParseInt(lastTSStr, 10, 64)
		size, _ := strconv.Atoi(c.Query("size"))

		list, nextID, nextTS, err := h.svc.ListByCommunityCursor(c.Request.Context(), communityID, lastID, lastTS, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"list":              list,
			"next_last_id":      nextID,
			"next_created_at":   nextTS,
			"next_created_at_s": time.Unix(nextTS, 0).Format(time.RFC3339),
		})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	list, err := h.svc.ListByCommunity(c.Request.Context(), communityID, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": page, "size": size})
}

func (h *PostHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	list, err := h.svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
