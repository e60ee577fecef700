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

// ReviewHandler handles HTTP requests for the review resource.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Title  string `json:"title"  validate:"required,max=100"`
	Text   string `json:"text"   validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=10"`
}

// List handles GET /api/v1/reviews with the full query contract.
func (h *ReviewHandler) List(c echo.Context) error {
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

// ListForBootcamp handles GET /api/v1/bootcamps/:id/reviews.
func (h *ReviewHandler) ListForBootcamp(c echo.Context) error {
	items, err := h.service.ListByBootcamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scopedListResponse{Success: true, Count: len(items), Data: items})
}

// Get handles GET /api/v1/reviews/:id.
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, review)
}

// Create handles POST /api/v1/bootcamps/:id/reviews. One review per user per
// bootcamp.
func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), user, c.Param("id"), &domain.Review{
		Title:  req.Title,
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("review").Inc()
	return okData(c, http.StatusCreated, created)
}

// Update handles PUT /api/v1/reviews/:id. Owner or admin only.
func (h *ReviewHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	set, err := bindPartialUpdate(c)
	if err != nil {
		return err
	}
	delete(set, "bootcamp")

	updated, err := h.service.Update(c.Request().Context(), user, c.Param("id"), set)
	if err != nil {
		return err
	}
	return okData(c, http.StatusCreated, updated)
}

// Delete handles DELETE /api/v1/reviews/:id. Owner or admin only.
func (h *ReviewHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return okData(c, http.StatusCreated, map[string]any{})
}
