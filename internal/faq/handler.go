package faq

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/shared/server/respond"
)

// Handler exposes the FAQ assistant endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the FAQ routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/faq/ask", h.ask)
}

type askRequest struct {
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	respond.OK(c, h.service.Ask(c.Request.Context(), req.Question))
}
