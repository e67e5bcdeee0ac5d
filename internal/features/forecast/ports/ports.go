package ports

import (
	"context"
	"time"

	centersdomain "github.com/rahulphari/eye/internal/features/centers/domain"
	"github.com/rahulphari/eye/internal/features/forecast/domain"
)

// ForecastService defines the primary port for forecast operations.
type ForecastService interface {
	// GetForecast analyzes the center's stored vehicles at the given instant.
	GetForecast(ctx context.Context, centerID string, now time.Time) (*domain.AnalysisResult, error)
	// SyncVehicles merges freshly parsed vehicle rows into storage,
	// enriching them with live ETAs where available, and returns the
	// resulting analysis.
	SyncVehicles(ctx context.Context, centerID string, inputs []domain.VehicleInput, now time.Time) (*domain.AnalysisResult, error)
	// MarkComplete removes a processed vehicle from storage.
	MarkComplete(ctx context.Context, centerID, vehicleID string) error
	// LastSyncAt returns when the center's vehicles were last synced,
	// or the zero time when they never were.
	LastSyncAt(ctx context.Context, centerID string) (time.Time, error)
}

// VehicleRepository defines the secondary port for vehicle record storage.
type VehicleRepository interface {
	// GetAll returns the center's stored vehicle records keyed by vehicle ID.
	// A center with no stored vehicles yields an empty map.
	GetAll(ctx context.Context, centerID string) (map[string]domain.VehicleRecord, error)
	// SaveAll replaces the center's stored vehicle records.
	SaveAll(ctx context.Context, centerID string, vehicles map[string]domain.VehicleRecord) error
	// Delete removes one vehicle record; it reports whether the record existed.
	Delete(ctx context.Context, centerID, vehicleID string) (bool, error)
	// SetLastSync records the center's last sync instant.
	SetLastSync(ctx context.Context, centerID string, t time.Time) error
	// LastSync returns the center's last sync instant, zero when never synced.
	LastSync(ctx context.Context, centerID string) (time.Time, error)
}

// CenterProvider is the slice of the center registry the forecast
// service needs. Get returns nil, nil when the center does not exist.
// The centers feature's repository satisfies it.
type CenterProvider interface {
	Get(ctx context.Context, id string) (*centersdomain.Center, error)
	Save(ctx context.Context, center *centersdomain.Center) error
}

// AlertObserver receives the processed vehicle snapshots of each
// analysis run. Implementations must be idempotent across runs.
type AlertObserver interface {
	Observe(ctx context.Context, centerID string, vehicles []domain.ProcessedVehicle, now time.Time)
}
