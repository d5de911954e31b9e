// Copyright (C) 2025 EduChain Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mapbox wraps the two Mapbox APIs the tracking views need:
// forward geocoding restricted to India and driving directions.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.mapbox.com"

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		token:      os.Getenv("MAPBOX_ACCESS_TOKEN"),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

type GeocodeResult struct {
	// Center is [longitude, latitude], the order Mapbox uses everywhere
	Center    [2]float64
	PlaceName string
}

type geocodeResponse struct {
	Features []struct {
		Center    [2]float64 `json:"center"`
		PlaceName string     `json:"place_name"`
	} `json:"features"`
}

// Geocode resolves a free-form location to coordinates. Results are limited
// to India since every supply route stays inside the country.
func (c *Client) Geocode(ctx context.Context, location string) (GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(location))

	query := url.Values{}
	query.Set("access_token", c.token)
	query.Set("country", "IN")
	query.Set("limit", "1")

	var response geocodeResponse
	if err := c.get(ctx, endpoint+"?"+query.Encode(), &response); err != nil {
		return GeocodeResult{}, err
	}

	if len(response.Features) == 0 {
		return GeocodeResult{}, errors.Errorf("no geocoding result for %q", location)
	}

	return GeocodeResult{
		Center:    response.Features[0].Center,
		PlaceName: response.Features[0].PlaceName,
	}, nil
}

type RouteResult struct {
	Geometry map[string]any
	// DistanceMeters and DurationSeconds come straight from the API
	DistanceMeters  float64
	DurationSeconds float64
}

type directionsResponse struct {
	Routes []struct {
		Geometry map[string]any `json:"geometry"`
		Distance float64        `json:"distance"`
		Duration float64        `json:"duration"`
	} `json:"routes"`
}

// DrivingRoute fetches the driving route between two coordinates with its
// geojson geometry.
func (c *Client) DrivingRoute(ctx context.Context, from, to [2]float64) (RouteResult, error) {
	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f",
		c.baseURL, from[0], from[1], to[0], to[1])

	query := url.Values{}
	query.Set("access_token", c.token)
	query.Set("geometries", "geojson")

	var response directionsResponse
	if err := c.get(ctx, endpoint+"?"+query.Encode(), &response); err != nil {
		return RouteResult{}, err
	}

	if len(response.Routes) == 0 {
		return RouteResult{}, errors.New("no route found")
	}

	route := response.Routes[0]
	return RouteResult{
		Geometry:        route.Geometry,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("mapbox returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
