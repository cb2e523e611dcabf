package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/service"
)

type ListingHandler struct {
	svc *service.ListingService
}

func NewListingHandler(svc *service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

type CreateJobReq struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Content      string `json:"content"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

func (h *ListingHandler) CreateJob(c *gin.Context) {
	var req CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	job, err := h.svc.CreateJob(c.Request.Context(), identityFrom(c), service.JobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Content:      req.Content,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": job.ID, "slug": job.Slug})
}

type CreateRealEstateReq struct {
	Title        string `json:"title" binding:"required"`
	Address      string `json:"address"`
	Price        int64  `json:"price"`
	Content      string `json:"content"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

func (h *ListingHandler) CreateRealEstate(c *gin.Context) {
	var req CreateRealEstateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	listing, err := h.svc.CreateRealEstate(c.Request.Context(), identityFrom(c), service.RealEstateInput{
		Title:        req.Title,
		Address:      req.Address,
		Price:        req.Price,
		Content:      req.Content,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": listing.ID, "slug": listing.Slug})
}

type ContactReq struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *ListingHandler) UpdateJobContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.UpdateJobContact(c.Request.Context(), identityFrom(c), id, req.Email, req.Phone); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ListingHandler) UpdateRealEstateContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.UpdateRealEstateContact(c.Request.Context(), identityFrom(c), id, req.Email, req.Phone); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ListingHandler) GetJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	job, contact, err := h.svc.GetJob(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "contact": contact})
}

func (h *ListingHandler) GetRealEstate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	listing, contact, err := h.svc.GetRealEstate(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing, "contact": contact})
}

func (h *ListingHandler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	if q := c.Query("q"); q != "" {
		list, err := h.svc.SearchJobs(c.Request.Context(), q, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": list})
		return
	}

	list, err := h.svc.ListJobs(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *ListingHandler) ListRealEstate(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	if q := c.Query("q"); q != "" {
		list, err := h.svc.SearchRealEstate(c.Request.Context(), q, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": list})
		return
	}

	list, err := h.svc.ListRealEstate(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
