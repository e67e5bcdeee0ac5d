package ports

import (
	"context"
	"time"

	"github.com/rahulphari/eye/internal/features/alerts/domain"
)

// Notifier delivers an alert to its audience. Implementations decide
// the transport; delivery failures are logged, never propagated to the
// forecast path.
type Notifier interface {
	Notify(ctx context.Context, alert domain.Alert) error
}

// AlertLog records which alerts have already fired so repeated
// forecast runs stay idempotent. MarkFired returns true exactly once
// per (centerID, vehicleID, kind) within the retention window.
type AlertLog interface {
	MarkFired(ctx context.Context, centerID, vehicleID string, kind domain.AlertKind, retention time.Duration) (bool, error)
}
