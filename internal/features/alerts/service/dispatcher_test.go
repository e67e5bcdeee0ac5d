package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rahulphari/eye/internal/features/alerts/domain"
	forecastdomain "github.com/rahulphari/eye/internal/features/forecast/domain"

	"github.com/stretchr/testify/assert"
)

// mockAlertLog is an in-memory AlertLog for testing.
type mockAlertLog struct {
	fired     map[string]bool
	returnErr error
}

func newMockAlertLog() *mockAlertLog {
	return &mockAlertLog{fired: map[string]bool{}}
}

func (m *mockAlertLog) MarkFired(_ context.Context, centerID, vehicleID string, kind domain.AlertKind, _ time.Duration) (bool, error) {
	if m.returnErr != nil {
		return false, m.returnErr
	}
	key := fmt.Sprintf("%s:%s:%s", centerID, vehicleID, kind)
	if m.fired[key] {
		return false, nil
	}
	m.fired[key] = true
	return true, nil
}

// mockNotifier records delivered alerts.
type mockNotifier struct {
	delivered []domain.Alert
	returnErr error
}

func (m *mockNotifier) Notify(_ context.Context, alert domain.Alert) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.delivered = append(m.delivered, alert)
	return nil
}

func trackedSnapshot(id string, eta time.Time) forecastdomain.ProcessedVehicle {
	return forecastdomain.ProcessedVehicle{
		VehicleRecord: forecastdomain.VehicleRecord{
			ID:             id,
			OriginFacility: "Gurgaon_GW",
			TotalLoad:      500,
			HasGPS:         true,
		},
		EffectiveETA: eta,
	}
}

func TestDispatcher_FiresDueAlerts(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	notifier := &mockNotifier{}
	d := NewDispatcher(newMockAlertLog(), notifier, time.Hour)

	vehicles := []forecastdomain.ProcessedVehicle{
		trackedSnapshot("DL01AB1234", now.Add(20*time.Minute)),
	}

	d.Observe(context.Background(), "DEL_HUB", vehicles, now)

	assert.Len(t, notifier.delivered, 2)
	assert.Equal(t, domain.AlertKindApproach60, notifier.delivered[0].Kind)
	assert.Equal(t, domain.AlertKindApproach30, notifier.delivered[1].Kind)
	assert.Equal(t, "DEL_HUB", notifier.delivered[0].CenterID)
	assert.Equal(t, "Gurgaon_GW", notifier.delivered[0].OriginFacility)
}

func TestDispatcher_IdempotentAcrossRuns(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	notifier := &mockNotifier{}
	d := NewDispatcher(newMockAlertLog(), notifier, time.Hour)

	vehicles := []forecastdomain.ProcessedVehicle{
		trackedSnapshot("DL01AB1234", now.Add(45*time.Minute)),
	}

	d.Observe(context.Background(), "DEL_HUB", vehicles, now)
	d.Observe(context.Background(), "DEL_HUB", vehicles, now.Add(time.Minute))

	assert.Len(t, notifier.delivered, 1)
}

func TestDispatcher_EscalatesAsETACloses(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	eta := now.Add(45 * time.Minute)
	notifier := &mockNotifier{}
	d := NewDispatcher(newMockAlertLog(), notifier, time.Hour)

	vehicles := []forecastdomain.ProcessedVehicle{trackedSnapshot("DL01AB1234", eta)}

	d.Observe(context.Background(), "DEL_HUB", vehicles, now)
	d.Observe(context.Background(), "DEL_HUB", vehicles, now.Add(20*time.Minute))
	d.Observe(context.Background(), "DEL_HUB", vehicles, now.Add(50*time.Minute))

	// One approach-60, one approach-30, one arrived; nothing twice.
	assert.Len(t, notifier.delivered, 3)
	assert.Equal(t, domain.AlertKindArrived, notifier.delivered[2].Kind)
}

func TestDispatcher_LogFailureDoesNotNotify(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	log := newMockAlertLog()
	log.returnErr = errors.New("redis unavailable")
	notifier := &mockNotifier{}
	d := NewDispatcher(log, notifier, time.Hour)

	vehicles := []forecastdomain.ProcessedVehicle{
		trackedSnapshot("DL01AB1234", now.Add(20*time.Minute)),
	}

	d.Observe(context.Background(), "DEL_HUB", vehicles, now)

	assert.Empty(t, notifier.delivered)
}

func TestDispatcher_NotifyFailureDoesNotPanic(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	notifier := &mockNotifier{returnErr: errors.New("webhook down")}
	d := NewDispatcher(newMockAlertLog(), notifier, time.Hour)

	vehicles := []forecastdomain.ProcessedVehicle{
		trackedSnapshot("DL01AB1234", now.Add(-time.Minute)),
	}

	assert.NotPanics(t, func() {
		d.Observe(context.Background(), "DEL_HUB", vehicles, now)
	})
}
