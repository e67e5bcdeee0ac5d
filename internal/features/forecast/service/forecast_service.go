package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rahulphari/eye/internal/core/logger"
	centersdomain "github.com/rahulphari/eye/internal/features/centers/domain"
	"github.com/rahulphari/eye/internal/features/forecast/domain"
	"github.com/rahulphari/eye/internal/features/forecast/ports"
	routingports "github.com/rahulphari/eye/internal/features/routing/ports"

	"go.uber.org/zap"
)

var (
	// ErrCenterNotFound is returned when the requested center does not exist.
	ErrCenterNotFound = errors.New("center not found")
	// ErrVehicleNotFound is returned when the vehicle record does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// ForecastServiceImpl implements ports.ForecastService. The analysis
// itself is a pure domain function; this service owns the storage,
// enrichment, and alerting around it.
type ForecastServiceImpl struct {
	vehicles ports.VehicleRepository
	centers  ports.CenterProvider
	// router is optional; nil disables live route enrichment globally.
	router routingports.RouteProvider
	// alerts is optional; nil disables alert dispatch.
	alerts ports.AlertObserver
	// staleAfter bounds how long a GPS-tracked record outlives its
	// live arrival time before being pruned.
	staleAfter time.Duration
}

// NewForecastService creates a new ForecastServiceImpl.
func NewForecastService(
	vehicles ports.VehicleRepository,
	centers ports.CenterProvider,
	router routingports.RouteProvider,
	alerts ports.AlertObserver,
	staleAfter time.Duration,
) *ForecastServiceImpl {
	return &ForecastServiceImpl{
		vehicles:   vehicles,
		centers:    centers,
		router:     router,
		alerts:     alerts,
		staleAfter: staleAfter,
	}
}

// GetForecast analyzes the center's stored vehicles at the given instant.
func (s *ForecastServiceImpl) GetForecast(ctx context.Context, centerID string, now time.Time) (*domain.AnalysisResult, error) {
	center, err := s.centers.Get(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get center: %w", err)
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	vehicles, err := s.loadVehicles(ctx, centerID, now)
	if err != nil {
		return nil, err
	}

	analysis := domain.Analyze(vehicles, center.Config, now)
	s.observe(ctx, centerID, &analysis, now)
	return &analysis, nil
}

// SyncVehicles merges freshly parsed vehicle rows into storage and
// returns the resulting analysis. Centers seen for the first time are
// auto-registered with the default configuration.
func (s *ForecastServiceImpl) SyncVehicles(ctx context.Context, centerID string, inputs []domain.VehicleInput, now time.Time) (*domain.AnalysisResult, error) {
	center, err := s.centers.Get(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get center: %w", err)
	}
	if center == nil {
		center, err = centersdomain.NewDefaultCenter(centerID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to auto-register center: %w", err)
		}
		if err := s.centers.Save(ctx, center); err != nil {
			return nil, fmt.Errorf("service: failed to auto-register center: %w", err)
		}
		logger.Get().Info("Auto-registered new center", zap.String("center_id", centerID))
	}

	stored, err := s.loadVehicles(ctx, centerID, now)
	if err != nil {
		return nil, err
	}

	for _, in := range inputs {
		if in.ID == "" {
			continue
		}

		rec := domain.VehicleRecord{
			ID:                   in.ID,
			OriginFacility:       in.OriginFacility,
			TotalLoad:            in.TotalLoad,
			MixedBagCount:        in.MixedBagCount,
			EstimatedArrivalTime: in.EstimatedArrivalTime,
			OriginCoords:         in.OriginCoords,
			SavedAt:              now,
		}
		s.enrichWithLiveRoute(ctx, center, &rec, now)
		stored[rec.ID] = rec
	}

	if err := s.vehicles.SaveAll(ctx, centerID, stored); err != nil {
		return nil, fmt.Errorf("service: failed to save vehicles: %w", err)
	}
	if err := s.vehicles.SetLastSync(ctx, centerID, now); err != nil {
		return nil, fmt.Errorf("service: failed to record sync time: %w", err)
	}

	analysis := domain.Analyze(stored, center.Config, now)
	s.observe(ctx, centerID, &analysis, now)
	return &analysis, nil
}

// MarkComplete removes one processed vehicle from storage.
func (s *ForecastServiceImpl) MarkComplete(ctx context.Context, centerID, vehicleID string) error {
	deleted, err := s.vehicles.Delete(ctx, centerID, vehicleID)
	if err != nil {
		return fmt.Errorf("service: failed to delete vehicle: %w", err)
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	return nil
}

// LastSyncAt returns when the center's vehicles were last synced.
func (s *ForecastServiceImpl) LastSyncAt(ctx context.Context, centerID string) (time.Time, error) {
	t, err := s.vehicles.LastSync(ctx, centerID)
	if err != nil {
		return time.Time{}, fmt.Errorf("service: failed to get last sync: %w", err)
	}
	return t, nil
}

// enrichWithLiveRoute attaches a live arrival estimate when the center
// and record both support it. A failed lookup degrades the record to
// GPS-unavailable; it never fails the sync.
func (s *ForecastServiceImpl) enrichWithLiveRoute(ctx context.Context, center *centersdomain.Center, rec *domain.VehicleRecord, now time.Time) {
	if s.router == nil || !center.GPSEnabled || center.Coords == "" || rec.OriginCoords == "" {
		return
	}

	est, err := s.router.EstimateRoute(ctx, rec.OriginCoords, center.Coords)
	if err != nil {
		logger.Get().Warn("Live route lookup failed, falling back to estimated ETA",
			zap.String("vehicle_id", rec.ID),
			zap.Error(err),
		)
		return
	}

	live := now.Add(time.Duration(est.DurationSeconds * float64(time.Second)))
	rec.LiveArrivalTime = &live
	rec.LiveDistanceKm = est.DistanceKm
	rec.HasGPS = true
}

// loadVehicles reads the center's records, pruning GPS-tracked entries
// whose live arrival is older than the stale window. Long-gone tracked
// vehicles were unloaded and would otherwise pollute the forecast forever.
func (s *ForecastServiceImpl) loadVehicles(ctx context.Context, centerID string, now time.Time) (map[string]domain.VehicleRecord, error) {
	vehicles, err := s.vehicles.GetAll(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load vehicles: %w", err)
	}

	if s.staleAfter <= 0 {
		return vehicles, nil
	}

	pruned := false
	for id, v := range vehicles {
		if !v.HasGPS {
			continue
		}
		ref := v.SavedAt
		if v.LiveArrivalTime != nil {
			ref = *v.LiveArrivalTime
		}
		if now.Sub(ref) > s.staleAfter {
			delete(vehicles, id)
			pruned = true
		}
	}

	if pruned {
		if err := s.vehicles.SaveAll(ctx, centerID, vehicles); err != nil {
			return nil, fmt.Errorf("service: failed to persist pruned vehicles: %w", err)
		}
	}
	return vehicles, nil
}

// observe hands the processed snapshots to the alert observer, if any.
func (s *ForecastServiceImpl) observe(ctx context.Context, centerID string, analysis *domain.AnalysisResult, now time.Time) {
	if s.alerts == nil {
		return
	}
	s.alerts.Observe(ctx, centerID, analysis.AllVehicles(), now)
}
