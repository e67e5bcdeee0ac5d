package service

import (
	"context"
	"time"

	"github.com/rahulphari/eye/internal/core/logger"
	"github.com/rahulphari/eye/internal/features/alerts/domain"
	"github.com/rahulphari/eye/internal/features/alerts/ports"
	forecastdomain "github.com/rahulphari/eye/internal/features/forecast/domain"

	"go.uber.org/zap"
)

// Dispatcher observes processed vehicle snapshots after each forecast
// run and fires due alerts at most once per vehicle and milestone. The
// forecast engine itself holds no notification state.
type Dispatcher struct {
	log       ports.AlertLog
	notifier  ports.Notifier
	retention time.Duration
}

// NewDispatcher creates a new Dispatcher. retention bounds how long a
// fired alert marker is remembered.
func NewDispatcher(log ports.AlertLog, notifier ports.Notifier, retention time.Duration) *Dispatcher {
	return &Dispatcher{
		log:       log,
		notifier:  notifier,
		retention: retention,
	}
}

// Observe inspects each vehicle snapshot and dispatches any alerts that
// have not fired yet. Errors are logged and never interrupt the
// forecast path.
func (d *Dispatcher) Observe(ctx context.Context, centerID string, vehicles []forecastdomain.ProcessedVehicle, now time.Time) {
	for _, v := range vehicles {
		for _, kind := range domain.DueKinds(v, now) {
			first, err := d.log.MarkFired(ctx, centerID, v.ID, kind, d.retention)
			if err != nil {
				logger.Get().Warn("Failed to record alert marker",
					zap.String("vehicle_id", v.ID),
					zap.String("kind", string(kind)),
					zap.Error(err),
				)
				continue
			}
			if !first {
				continue
			}

			alert := domain.Alert{
				CenterID:       centerID,
				VehicleID:      v.ID,
				Kind:           kind,
				ETA:            v.EffectiveETA,
				OriginFacility: v.OriginFacility,
				TotalLoad:      v.TotalLoad,
				FiredAt:        now,
			}
			if err := d.notifier.Notify(ctx, alert); err != nil {
				logger.Get().Warn("Failed to deliver alert",
					zap.String("vehicle_id", v.ID),
					zap.String("kind", string(kind)),
					zap.Error(err),
				)
			}
		}
	}
}
