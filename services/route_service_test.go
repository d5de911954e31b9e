package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/educhain-dev/educhain/mapbox"
	"github.com/stretchr/testify/assert"
)

func newMapboxStub(t *testing.T, distanceMeters float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"):
			assert.Equal(t, "IN", r.URL.Query().Get("country"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{"features":[{"center":[77.1025,28.7041],"place_name":"Delhi, India"}]}`)
		case strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/driving/"):
			assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
			fmt.Fprintf(w, `{"routes":[{"geometry":{"type":"LineString","coordinates":[]},"distance":%f,"duration":43200}]}`, distanceMeters)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRoute(t *testing.T) {
	t.Run("should round distance and duration to two decimals", func(t *testing.T) {
		server := newMapboxStub(t, 1234567)
		defer server.Close()

		service := NewMapRouteService(mapbox.NewClientWithBaseURL(server.Client(), server.URL, "test-token"))

		route, err := service.Route(context.Background(), "Delhi", "Mumbai")

		assert.NoError(t, err)
		assert.Equal(t, 1234.57, route.DistanceKM)
		assert.Equal(t, 12.0, route.DurationHrs)
		assert.Equal(t, "Delhi, India", route.From.PlaceName)
	})

	t.Run("should bucket the shipping time by distance", func(t *testing.T) {
		assert.Equal(t, "1-3 days", shippingTimeEstimate(499))
		assert.Equal(t, "3-5 days", shippingTimeEstimate(500))
		assert.Equal(t, "3-5 days", shippingTimeEstimate(1499))
		assert.Equal(t, "5-10 days", shippingTimeEstimate(1500))
	})
}
