package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// dataResponse is the envelope for single-resource responses.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// listResponse is the envelope for list endpoints backed by the query
// builder. Pagination is always present, possibly empty.
type listResponse struct {
	Success    bool             `json:"success"`
	Count      int              `json:"count"`
	Pagination query.Pagination `json:"pagination"`
	Data       any              `json:"data"`
}

// scopedListResponse is the envelope for nested (unpaginated) lists.
type scopedListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// tokenResponse is the envelope for endpoints that issue a session token.
type tokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func okData(c echo.Context, code int, data any) error {
	return c.JSON(code, dataResponse{Success: true, Data: data})
}
