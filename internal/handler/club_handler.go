package handler

import (
	"net/http"

	"campusconnect/internal/middleware"
	"campusconnect/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClubHandler struct {
	svc *service.ClubService
}

func NewClubHandler(db *gorm.DB) *ClubHandler {
	return &ClubHandler{svc: service.NewClubService(db)}
}

func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.svc.List(c.Query("status"), middleware.Role(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	club, err := h.svc.Get(id, middleware.UserID(c), middleware.Role(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Create(c *gin.Context) {
	var req service.ClubInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid params"})
		return
	}

	club, err := h.svc.Create(middleware.UserID(c), middleware.Role(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req service.ClubUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid params"})
		return
	}

	club, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Club deleted successfully"})
}

func (h *ClubHandler) Join(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	member, err := h.svc.Join(middleware.UserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
