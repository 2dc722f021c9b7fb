package handler

import (
	"net/http"

	"roomshub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	subjectService service.SubjectService
}

func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
	}
}

// RegisterRoutes registers subject-related routes
func (h *SubjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/subjects", h.List)
	router.GET("/subjects/:subjectName", h.Get)
}

// List returns all configured subjects
// GET /api/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.subjectService.List())
}

// Get returns one subject by name
// GET /api/subjects/:subjectName
func (h *SubjectHandler) Get(c *gin.Context) {
	subject, err := h.subjectService.Get(c.Param("subjectName"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}
