package catalogue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/gems"
	"offr-backend/internal/shared/server/respond"
)

// Handler exposes the catalogue browser and hidden-gems endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the catalogue routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/courses", h.listCourses)
	rg.GET("/courses/:id", h.getCourse)
	rg.GET("/universities", h.listUniversities)
	rg.POST("/gems", h.hiddenGems)
}

func (h *Handler) listCourses(c *gin.Context) {
	filter := CourseFilter{
		UniversityID: c.Query("university_id"),
		Query:        c.Query("query"),
	}
	courses, err := h.service.ListCourses(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to list courses", nil)
		return
	}
	if courses == nil {
		courses = []Course{}
	}
	respond.OK(c, gin.H{"courses": courses})
}

func (h *Handler) getCourse(c *gin.Context) {
	course, err := h.service.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if IsNotFound(err) {
			respond.Error(c, http.StatusNotFound, "not_found", "Course not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to fetch course", nil)
		return
	}
	respond.OK(c, course)
}

func (h *Handler) listUniversities(c *gin.Context) {
	unis, err := h.service.ListUniversities(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to list universities", nil)
		return
	}
	if unis == nil {
		unis = []University{}
	}
	respond.OK(c, gin.H{"universities": unis})
}

type gemsRequest struct {
	Interests  []string `json:"interests"`
	MaxResults int      `json:"max_results"`
}

func (h *Handler) hiddenGems(c *gin.Context) {
	var req gemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	courses, err := h.service.ListCourses(c.Request.Context(), CourseFilter{})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load catalogue", nil)
		return
	}

	unis := make(map[string]string)
	if list, err := h.service.ListUniversities(c.Request.Context()); err == nil {
		for _, u := range list {
			unis[u.ID] = u.Name
		}
	}

	candidates := make([]gems.Course, 0, len(courses))
	for _, course := range courses {
		candidates = append(candidates, gems.Course{
			ID:         course.ID,
			Name:       course.Name,
			University: unis[course.UniversityID],
			Faculty:    course.Faculty,
		})
	}

	matches := gems.Recommend(req.Interests, candidates, req.MaxResults)
	respond.OK(c, gin.H{"matches": matches})
}
