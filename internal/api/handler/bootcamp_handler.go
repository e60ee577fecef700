package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/api/metrics"
	"github.com/devtrail/bootcamp-api/internal/api/middleware"
	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// BootcampHandler handles HTTP requests for the bootcamp resource.
type BootcampHandler struct {
	service    ports.BootcampService
	maxUpload  int64
	uploadPath string
}

func NewBootcampHandler(service ports.BootcampService, maxUpload int64, uploadPath string) *BootcampHandler {
	return &BootcampHandler{service: service, maxUpload: maxUpload, uploadPath: uploadPath}
}

type createBootcampRequest struct {
	Name          string   `json:"name"        validate:"required"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website"     validate:"omitempty,url"`
	Phone         string   `json:"phone"       validate:"omitempty,max=20"`
	Email         string   `json:"email"       validate:"omitempty,email"`
	Address       string   `json:"address"     validate:"required"`
	Careers       []string `json:"careers"     validate:"required,min=1"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

type removedResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// List handles GET /api/v1/bootcamps with the full filter/sort/select/page
// query contract.
//
// @Summary      List bootcamps
// @Tags         bootcamps
// @Produce      json
// @Success      200  {object}  listResponse
// @Router       /api/v1/bootcamps [get]
func (h *BootcampHandler) List(c echo.Context) error {
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

// Get handles GET /api/v1/bootcamps/:id.
func (h *BootcampHandler) Get(c echo.Context) error {
	b, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, b)
}

// Create handles POST /api/v1/bootcamps. Requires publisher or admin; a
// non-admin may own at most one bootcamp.
func (h *BootcampHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createBootcampRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), user, &domain.Bootcamp{
		Name:          req.Name,
		Description:   req.Description,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Careers:       req.Careers,
		Housing:       req.Housing,
		JobAssistance: req.JobAssistance,
		JobGuarantee:  req.JobGuarantee,
		AcceptGi:      req.AcceptGi,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("bootcamp").Inc()
	return okData(c, http.StatusCreated, created)
}

// Update handles PUT /api/v1/bootcamps/:id. Partial update: only the fields
// present in the body are touched. Owner or admin only.
func (h *BootcampHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	set, err := bindPartialUpdate(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), user, c.Param("id"), set)
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/bootcamps/:id, cascading to courses and
// reviews. Owner or admin only.
func (h *BootcampHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removedResponse{Success: true, Msg: "Bootcamp removed!"})
}

// WithinRadius handles GET /api/v1/bootcamps/radius/:zipcode/:distance where
// distance is in miles.
func (h *BootcampHandler) WithinRadius(c echo.Context) error {
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil || distance <= 0 {
		return domain.NewError(http.StatusBadRequest, "Please provide a valid distance in miles")
	}

	items, err := h.service.WithinRadius(c.Request().Context(), c.Param("zipcode"), distance)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, scopedListResponse{Success: true, Count: len(items), Data: items})
}

// UploadPhoto handles PUT /api/v1/bootcamps/:id/photo. Accepts a single
// multipart image under the "file" field, capped at the configured size.
func (h *BootcampHandler) UploadPhoto(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return domain.NewError(http.StatusBadRequest, "Please upload a file")
	}
	if fh.Size > h.maxUpload {
		return domain.NewError(http.StatusBadRequest,
			fmt.Sprintf("Please upload an image less than %d bytes", h.maxUpload))
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	mtype, err := mimetype.DetectReader(src)
	src.Close()
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		return domain.NewError(http.StatusBadRequest, "Please upload an image file")
	}

	id := c.Param("id")
	filename := "photo_" + id + mtype.Extension()

	updated, err := h.service.UpdatePhoto(c.Request().Context(), user, id, filename, func() error {
		return h.saveUpload(fh, filename)
	})
	if err != nil {
		return err
	}

	return okData(c, http.StatusOK, updated.Photo)
}

// saveUpload copies the multipart file into the configured upload directory.
func (h *BootcampHandler) saveUpload(fh *multipart.FileHeader, filename string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadPath, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(h.uploadPath, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
