package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindPartialUpdate binds the JSON body into a field set for a partial
// update, stripping identifiers and ownership so they cannot be rewritten
// through the generic update path.
func bindPartialUpdate(c echo.Context) (map[string]any, error) {
	set := make(map[string]any)
	if err := c.Bind(&set); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	delete(set, "_id")
	delete(set, "id")
	delete(set, "user")
	return set, nil
}
