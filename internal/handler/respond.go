package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/middleware"
	"hallohallo/internal/pkg"
	"hallohallo/internal/service"
)

// identityFrom rebuilds the caller identity injected by the auth middleware.
func identityFrom(c *gin.Context) *service.Identity {
	v, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		return nil
	}
	return &service.Identity{ID: v.(uint64)}
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondErr maps the error taxonomy onto HTTP statuses.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkg.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}
