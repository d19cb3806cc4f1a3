package assessments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/catalogue"
	"offr-backend/internal/scoring"
	"offr-backend/internal/shared/server/middleware"
	"offr-backend/internal/shared/server/respond"
	"offr-backend/internal/usage"
)

// Handler exposes the assessment endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the assessment routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/assess", h.assess)
}

func (h *Handler) assess(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if req.CourseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "course_id is required", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	resp, err := h.service.Assess(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached",
				"You have used all AI assessments for this period", nil)
		case catalogue.IsNotFound(err):
			respond.Error(c, http.StatusNotFound, "not_found", "Course not found", nil)
		case errors.Is(err, scoring.ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, scoring.ErrMissingRequirement):
			respond.Error(c, http.StatusUnprocessableEntity, "insufficient_data",
				"This course has no usable entry threshold, so a band cannot be computed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "Assessment failed", nil)
		}
		return
	}
	respond.OK(c, resp)
}
