package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rahulphari/eye/internal/core/config"
	"github.com/rahulphari/eye/internal/core/httpclient"
	"github.com/rahulphari/eye/internal/features/routing/domain"
)

var (
	// ErrMissingAccessToken is returned when the adapter has no token configured.
	ErrMissingAccessToken = errors.New("mapbox access token is not configured")
	// ErrNoRouteFound is returned when the API responds without any route.
	ErrNoRouteFound = errors.New("no route found")
)

// MapboxAdapter implements the RouteProvider interface using the Mapbox
// Directions API with the driving-traffic profile.
type MapboxAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Mapbox connection details.
	config config.MapboxConfig
}

// NewMapboxAdapter creates a new instance of MapboxAdapter.
func NewMapboxAdapter(cfg config.MapboxConfig) *MapboxAdapter {
	return &MapboxAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// mapboxResponse represents the JSON structure from the Directions API.
type mapboxResponse struct {
	Routes []struct {
		// Distance is in meters.
		Distance float64 `json:"distance"`
		// Duration is in seconds.
		Duration float64 `json:"duration"`
	} `json:"routes"`
	Message string `json:"message"`
}

// EstimateRoute fetches the live driving estimate between two "lon,lat" points.
func (a *MapboxAdapter) EstimateRoute(ctx context.Context, originCoords, destinationCoords string) (*domain.RouteEstimate, error) {
	if a.config.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	reqURL := fmt.Sprintf("%s/directions/v5/mapbox/driving-traffic/%s;%s?access_token=%s&overview=false",
		a.config.URL, originCoords, destinationCoords, url.QueryEscape(a.config.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var mbResp mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&mbResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if mbResp.Message != "" {
			return nil, fmt.Errorf("mapbox API returned status %d: %s", resp.StatusCode, mbResp.Message)
		}
		return nil, fmt.Errorf("mapbox API returned status: %d", resp.StatusCode)
	}

	if len(mbResp.Routes) == 0 {
		return nil, ErrNoRouteFound
	}

	return &domain.RouteEstimate{
		DistanceKm:      mbResp.Routes[0].Distance / 1000,
		DurationSeconds: mbResp.Routes[0].Duration,
	}, nil
}
