package handler

import (
	"net/http"
	"strconv"

	"campusconnect/internal/middleware"
	"campusconnect/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChatHandler struct {
	svc *service.ChatService
}

type messageReq struct {
	Content string `json:"content" binding:"required"`
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{svc: service.NewChatService(db)}
}

func (h *ChatHandler) List(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.svc.Messages(middleware.UserID(c), id, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *ChatHandler) Post(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid params"})
		return
	}

	msg, err := h.svc.Post(c.Request.Context(), middleware.UserID(c), id, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
