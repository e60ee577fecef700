// Package geocoder resolves zipcodes and free-form addresses to coordinates
// using a Nominatim-compatible HTTP endpoint. It is an external collaborator:
// callers decide how to degrade when lookups fail.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves the query (zipcode or address) to a GeoJSON point.
func (c *Client) Geocode(ctx context.Context, q string) (domain.Location, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return domain.Location{}, err
	}
	req.Header.Set("User-Agent", "bootcamp-api")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Location{}, fmt.Errorf("geocode decode: %w", err)
	}
	if len(results) == 0 {
		return domain.Location{}, fmt.Errorf("geocode: no match for %q", q)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode: bad latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode: bad longitude: %w", err)
	}

	return domain.Location{
		Type:             "Point",
		Coordinates:      []float64{lng, lat},
		FormattedAddress: results[0].DisplayName,
		Zipcode:          q,
	}, nil
}
