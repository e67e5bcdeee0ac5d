package adapters

import (
	"context"

	"github.com/rahulphari/eye/internal/core/logger"
	"github.com/rahulphari/eye/internal/features/alerts/domain"

	"go.uber.org/zap"
)

// ZapNotifier implements ports.Notifier by writing structured log
// entries. It is the default sink; outward transports (push, chat
// webhooks) plug in behind the same port.
type ZapNotifier struct{}

// NewZapNotifier creates a new ZapNotifier.
func NewZapNotifier() *ZapNotifier {
	return &ZapNotifier{}
}

// Notify logs the alert.
func (n *ZapNotifier) Notify(_ context.Context, alert domain.Alert) error {
	logger.Get().Info("Vehicle alert",
		zap.String("center_id", alert.CenterID),
		zap.String("vehicle_id", alert.VehicleID),
		zap.String("kind", string(alert.Kind)),
		zap.Time("eta", alert.ETA),
		zap.String("origin_facility", alert.OriginFacility),
		zap.Int("total_load", alert.TotalLoad),
	)
	return nil
}
