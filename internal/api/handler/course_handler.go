package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/api/metrics"
	"github.com/devtrail/bootcamp-api/internal/api/middleware"
	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// CourseHandler handles HTTP requests for the course resource, both the
// top-level collection and the list nested under a bootcamp.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type createCourseRequest struct {
	Title                string  `json:"title"        validate:"required"`
	Description          string  `json:"description"  validate:"required"`
	Weeks                int     `json:"weeks"        validate:"required,gte=1"`
	Tuition              float64 `json:"tuition"      validate:"required,gte=0"`
	MinimumSkill         string  `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`
}

// List handles GET /api/v1/courses with the full query contract.
func (h *CourseHandler) List(c echo.Context) error {
	q := query.Parse(c.QueryParams())

	items, total, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listResponse{
		Success:    true,
		Count:      len(items),
		Pagination: query.Paginate(q, total),
		Data:       items,
	})
}

// ListForBootcamp handles GET /api/v1/bootcamps/:id/courses. Scoped lists
// are unpaginated.
func (h *CourseHandler) ListForBootcamp(c echo.Context) error {
	items, err := h.service.ListByBootcamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scopedListResponse{Success: true, Count: len(items), Data: items})
}

// Get handles GET /api/v1/courses/:id.
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, course)
}

// Create handles POST /api/v1/bootcamps/:id/courses.
func (h *CourseHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), user, c.Param("id"), &domain.Course{
		Title:                req.Title,
		Description:          req.Description,
		Weeks:                req.Weeks,
		Tuition:              req.Tuition,
		MinimumSkill:         req.MinimumSkill,
		ScholarshipAvailable: req.ScholarshipAvailable,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("course").Inc()
	return okData(c, http.StatusOK, created)
}

// Update handles PUT /api/v1/courses/:id.
func (h *CourseHandler) Update(c echo.Context) error {
	set, err := bindPartialUpdate(c)
	if err != nil {
		return err
	}
	delete(set, "bootcamp")

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), set)
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/courses/:id.
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return okData(c, http.StatusOK, map[string]any{})
}
