package handler

import (
	"net/http"

	"campusconnect/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	svc *service.DashboardService
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{svc: service.NewDashboardService(db)}
}

// Dashboard may serve numbers up to sixty seconds stale.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.svc.Get()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
