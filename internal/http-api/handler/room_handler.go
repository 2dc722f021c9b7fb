package handler

import (
	"net/http"
	"strconv"

	"roomshub/internal/http-api/dto"
	"roomshub/internal/http-api/middleware"
	"roomshub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService service.RoomService
}

func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// RegisterRoutes registers room- and sender-related routes
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/subjects/:subjectName/rooms")
	{
		rooms.GET("", h.List)
		rooms.GET("/:roomName", h.Get)
		rooms.POST("", h.Create)
		rooms.POST("/:roomName/senders", h.AddSender)
		rooms.DELETE("/:roomName/senders/:user", h.RemoveSender)
	}
}

// List returns all rooms of a subject
// GET /api/subjects/:subjectName/rooms
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomService.List(c.Request.Context(), c.Param("subjectName"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Get returns one room of a subject by name
// GET /api/subjects/:subjectName/rooms/:roomName
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.roomService.Get(c.Request.Context(), c.Param("subjectName"), c.Param("roomName"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Create creates a room with its initial sender whitelist
// POST /api/subjects/:subjectName/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	var req dto.CreateRoomDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), ident, c.Param("subjectName"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// AddSender registers a user as a sender of a room
// POST /api/subjects/:subjectName/rooms/:roomName/senders
func (h *RoomHandler) AddSender(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	var req dto.CreateSenderDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.AddSender(c.Request.Context(), ident, c.Param("subjectName"), c.Param("roomName"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// RemoveSender removes a user from a room's sender whitelist
// DELETE /api/subjects/:subjectName/rooms/:roomName/senders/:user
func (h *RoomHandler) RemoveSender(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not authenticated"})
		return
	}

	user, err := strconv.ParseInt(c.Param("user"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	room, err := h.roomService.RemoveSender(c.Request.Context(), ident, c.Param("subjectName"), c.Param("roomName"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
