package statements

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/narrative"
	"offr-backend/internal/shared/server/respond"
)

// Handler exposes the standalone statement analysis endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the statements routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/statements/analyse", h.analyse)
}

type analyseRequest struct {
	Format    string   `json:"format"`
	Statement string   `json:"statement"`
	Q1        string   `json:"q1"`
	Q2        string   `json:"q2"`
	Q3        string   `json:"q3"`
	Lines     []string `json:"lines"`
}

func (h *Handler) analyse(c *gin.Context) {
	var req analyseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if req.Format == "" {
		req.Format = FormatUCAS3Q
	}

	input := Input{
		Format:    req.Format,
		Q1:        req.Q1,
		Q2:        req.Q2,
		Q3:        req.Q3,
		Statement: req.Statement,
	}
	if input.Format != FormatUCAS3Q {
		input.Format = FormatSingle
		input.Statement = req.Statement
	}
	if !input.Present() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Statement text is required", nil)
		return
	}

	analysis, err := h.service.AnalyseStandalone(c.Request.Context(), input, req.Lines)
	if err != nil {
		code := narrative.CodeOf(err)
		respond.Error(c, narrative.HTTPStatusFor(code), code, "Statement analysis failed", map[string]any{
			"retryable": narrative.IsRetryable(err),
		})
		return
	}

	respond.OK(c, analysis)
}
