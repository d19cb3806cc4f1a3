package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/shared/server/middleware"
	"offr-backend/internal/shared/server/respond"
)

// Handler exposes profile CRUD and suggestion endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the profile routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
	rg.POST("/profile/suggestions", h.suggestions)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "No profile saved yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load profile", nil)
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) put(c *gin.Context) {
	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	profile.UserID = middleware.UserIDFromContext(c)

	if err := h.service.Save(c.Request.Context(), profile); err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to save profile", nil)
		return
	}

	saved, err := h.service.Get(c.Request.Context(), profile.UserID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load saved profile", nil)
		return
	}
	respond.OK(c, saved)
}

func (h *Handler) suggestions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.service.Get(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load profile", nil)
		return
	}

	suggestions := h.service.Suggestions(c.Request.Context(), profile)
	respond.OK(c, gin.H{"suggestions": suggestions})
}
