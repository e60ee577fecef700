package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

type stubBootcampService struct {
	listFn   func(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error)
	getFn    func(ctx context.Context, id string) (*domain.Bootcamp, error)
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubBootcampService) List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *stubBootcampService) Get(ctx context.Context, id string) (*domain.Bootcamp, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, domain.NewNotFound(id)
}

func (s *stubBootcampService) Create(ctx context.Context, actor *domain.User, b *domain.Bootcamp) (*domain.Bootcamp, error) {
	b.ID = "b1"
	return b, nil
}

func (s *stubBootcampService) Update(ctx context.Context, actor *domain.User, id string, set map[string]any) (*domain.Bootcamp, error) {
	return &domain.Bootcamp{ID: id}, nil
}

func (s *stubBootcampService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, actor, id)
	}
	return nil
}

func (s *stubBootcampService) WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]*domain.Bootcamp, error) {
	return nil, nil
}

func (s *stubBootcampService) UpdatePhoto(ctx context.Context, actor *domain.User, id, filename string, save func() error) (*domain.Bootcamp, error) {
	return &domain.Bootcamp{ID: id, Photo: filename}, nil
}

func TestBootcampList_EnvelopeAndQuery(t *testing.T) {
	var gotQuery query.Query
	svc := &stubBootcampService{
		listFn: func(_ context.Context, q query.Query) ([]*domain.Bootcamp, int64, error) {
			gotQuery = q
			return []*domain.Bootcamp{{ID: "b3"}, {ID: "b4"}}, 5, nil
		},
	}
	h := NewBootcampHandler(svc, 1000000, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bootcamps?select=name&sort=-createdAt&page=2&limit=2", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("list: %v", err)
	}

	if gotQuery.Page != 2 || gotQuery.Limit != 2 {
		t.Fatalf("query not forwarded: %+v", gotQuery)
	}
	if len(gotQuery.Select) != 1 || gotQuery.Select[0] != "name" {
		t.Fatalf("select not forwarded: %v", gotQuery.Select)
	}

	var body struct {
		Success    bool             `json:"success"`
		Count      int              `json:"count"`
		Pagination query.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || body.Count != 2 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.Pagination.Prev == nil || body.Pagination.Prev.Page != 1 || body.Pagination.Prev.Limit != 2 {
		t.Fatalf("expected prev {1,2}, got %+v", body.Pagination.Prev)
	}
	if body.Pagination.Next == nil || body.Pagination.Next.Page != 3 {
		t.Fatalf("expected next page 3, got %+v", body.Pagination.Next)
	}
}

func TestBootcampDelete_LegacyEnvelope(t *testing.T) {
	h := NewBootcampHandler(&stubBootcampService{}, 1000000, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bootcamps/b1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("b1")
	c.Set("user", &domain.User{ID: "u1", Role: domain.RoleAdmin})

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var body removedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || body.Msg != "Bootcamp removed!" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestWithinRadius_RejectsBadDistance(t *testing.T) {
	h := NewBootcampHandler(&stubBootcampService{}, 1000000, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bootcamps/radius/02215/zero", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("zipcode", "distance")
	c.SetParamValues("02215", "zero")

	err := h.WithinRadius(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
