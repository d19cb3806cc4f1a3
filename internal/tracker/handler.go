package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/shared/server/middleware"
	"offr-backend/internal/shared/server/respond"
)

// Handler exposes the tracker endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the tracker routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/tracker", h.add)
	rg.GET("/tracker", h.list)
	rg.PATCH("/tracker/:id/label", h.relabel)
	rg.DELETE("/tracker/:id", h.remove)
}

type addRequest struct {
	CourseID string          `json:"course_id"`
	Label    string          `json:"label"`
	Snapshot json.RawMessage `json:"snapshot"`
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	entry, err := h.service.Add(c.Request.Context(), userID, req.CourseID, req.Label, req.Snapshot)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to save tracker entry", nil)
		return
	}
	respond.Created(c, entry)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	entries, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load tracker entries", nil)
		return
	}
	respond.OK(c, gin.H{"entries": entries})
}

type relabelRequest struct {
	Label string `json:"label"`
}

func (h *Handler) relabel(c *gin.Context) {
	var req relabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	err := h.service.SetLabel(c.Request.Context(), userID, c.Param("id"), req.Label)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Tracker entry not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "Failed to update label", nil)
		}
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	err := h.service.Remove(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Tracker entry not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to delete tracker entry", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}
