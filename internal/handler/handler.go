package handler

import (
	"errors"
	"net/http"

	"campusconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// fail maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an upstream failure and surfaces as a generic
// 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "You must be a member of this club"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already exists"})
	case errors.Is(err, service.ErrNotApproved):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is not approved yet"})
	case errors.Is(err, service.ErrInvalidAvatar):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar format"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
