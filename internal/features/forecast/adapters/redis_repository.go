package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rahulphari/eye/internal/core/cache"
	"github.com/rahulphari/eye/internal/features/forecast/domain"
)

// Key layout mirrors the per-center storage of the operator tooling
// this service replaces: one JSON map of records per center, plus a
// last-sync marker.
const (
	vehicleDataKeyFmt = "inbound_vehicle_data:%s"
	lastSyncKeyFmt    = "last_sync:%s"
)

// RedisVehicleRepository implements ports.VehicleRepository over the cache port.
type RedisVehicleRepository struct {
	cache cache.Cache
}

// NewRedisVehicleRepository creates a new RedisVehicleRepository.
func NewRedisVehicleRepository(c cache.Cache) *RedisVehicleRepository {
	return &RedisVehicleRepository{
		cache: c,
	}
}

// GetAll retrieves the center's stored vehicle records.
func (r *RedisVehicleRepository) GetAll(ctx context.Context, centerID string) (map[string]domain.VehicleRecord, error) {
	key := fmt.Sprintf(vehicleDataKeyFmt, centerID)

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return map[string]domain.VehicleRecord{}, nil
		}
		return nil, fmt.Errorf("failed to get vehicle data from cache: %w", err)
	}

	var vehicles map[string]domain.VehicleRecord
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle data: %w", err)
	}
	if vehicles == nil {
		vehicles = map[string]domain.VehicleRecord{}
	}
	return vehicles, nil
}

// SaveAll replaces the center's stored vehicle records.
func (r *RedisVehicleRepository) SaveAll(ctx context.Context, centerID string, vehicles map[string]domain.VehicleRecord) error {
	data, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("failed to marshal vehicle data: %w", err)
	}

	key := fmt.Sprintf(vehicleDataKeyFmt, centerID)
	if err := r.cache.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("failed to save vehicle data to cache: %w", err)
	}
	return nil
}

// Delete removes one vehicle record and reports whether it existed.
func (r *RedisVehicleRepository) Delete(ctx context.Context, centerID, vehicleID string) (bool, error) {
	vehicles, err := r.GetAll(ctx, centerID)
	if err != nil {
		return false, err
	}

	if _, ok := vehicles[vehicleID]; !ok {
		return false, nil
	}

	delete(vehicles, vehicleID)
	if err := r.SaveAll(ctx, centerID, vehicles); err != nil {
		return false, err
	}
	return true, nil
}

// SetLastSync records the center's last sync instant.
func (r *RedisVehicleRepository) SetLastSync(ctx context.Context, centerID string, t time.Time) error {
	key := fmt.Sprintf(lastSyncKeyFmt, centerID)
	if err := r.cache.Set(ctx, key, []byte(t.Format(time.RFC3339Nano)), 0); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}
	return nil
}

// LastSync returns the center's last sync instant, zero when never synced.
func (r *RedisVehicleRepository) LastSync(ctx context.Context, centerID string) (time.Time, error) {
	key := fmt.Sprintf(lastSyncKeyFmt, centerID)

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last sync timestamp: %w", err)
	}
	return t, nil
}
