package handler

import (
	"net/http"
	"strconv"

	"roomshub/internal/http-api/dto"
	"roomshub/internal/http-api/middleware"
	"roomshub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
	rateLimit      gin.HandlerFunc
}

func NewMessageHandler(messageService service.MessageService, rateLimit gin.HandlerFunc) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		rateLimit:      rateLimit,
	}
}

// RegisterRoutes registers message-related routes
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/subjects/:subjectName/rooms/:roomName/messages")
	{
		messages.GET("", h.List)
		messages.POST("", h.rateLimit, h.Create)
	}
}

// Create posts a message into a room. On the bearer path the acting user
// posts as themselves; on the trusted-service path the body's user field
// names who the message is posted on behalf of.
// POST /api/subjects/:subjectName/rooms/:roomName/messages
func (h *MessageHandler) Create(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	var req dto.CreateMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Create(c.Request.Context(), ident, c.Param("subjectName"), c.Param("roomName"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// List pages through a room's history, newest first
// GET /api/subjects/:subjectName/rooms/:roomName/messages?offset=0&limit=10
func (h *MessageHandler) List(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(dto.DefaultOffset)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(dto.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, limit = dto.ClampPagination(offset, limit)

	page, err := h.messageService.List(c.Request.Context(), c.Param("subjectName"), c.Param("roomName"), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
