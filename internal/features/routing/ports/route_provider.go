package ports

import (
	"context"

	"github.com/rahulphari/eye/internal/features/routing/domain"
)

// RouteProvider defines the interface for live route estimation.
// Coordinates are "lon,lat" strings. A failed lookup means the vehicle
// is treated as GPS-unavailable by callers; it is never fatal.
type RouteProvider interface {
	// EstimateRoute returns the live driving estimate from origin to destination.
	EstimateRoute(ctx context.Context, originCoords, destinationCoords string) (*domain.RouteEstimate, error)
}
