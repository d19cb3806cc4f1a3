package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/shared/server/middleware"
	"offr-backend/internal/shared/server/respond"
)

// Handler exposes the usage endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the usage routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/usage", h.get)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load usage", nil)
		return
	}
	respond.OK(c, u)
}
