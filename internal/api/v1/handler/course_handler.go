package handler

import (
	"encoding/json"
	"net/http"

	"coursecatalog/internal/service"

	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		logger:        logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/courses", h.listCourses)
}

// listCourses godoc
// @Summary List courses
// @Description Returns every row of the courses table.
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Failure 405 {string} string "Method not allowed"
// @Failure 500 {string} string "Failed to retrieve courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		http.Error(w, "Failed to retrieve courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, courses, h.logger)
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, v any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}
