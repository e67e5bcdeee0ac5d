package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rahulphari/eye/internal/core/cache"
	"github.com/rahulphari/eye/internal/features/centers/domain"
)

// All centers are stored as one JSON map under a single key, mirroring
// how the operator tooling this replaces kept its center registry.
const centersCacheKey = "centers"

// RedisCenterRepository implements ports.CenterRepository over the cache port.
type RedisCenterRepository struct {
	cache cache.Cache
}

// NewRedisCenterRepository creates a new RedisCenterRepository.
func NewRedisCenterRepository(c cache.Cache) *RedisCenterRepository {
	return &RedisCenterRepository{
		cache: c,
	}
}

// GetAll retrieves the full center registry. A missing key yields an
// empty map.
func (r *RedisCenterRepository) GetAll(ctx context.Context) (map[string]*domain.Center, error) {
	data, err := r.cache.Get(ctx, centersCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return map[string]*domain.Center{}, nil
		}
		return nil, fmt.Errorf("failed to get centers from cache: %w", err)
	}

	var centers map[string]*domain.Center
	if err := json.Unmarshal(data, &centers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal centers: %w", err)
	}
	if centers == nil {
		centers = map[string]*domain.Center{}
	}
	return centers, nil
}

// Get retrieves a single center, or nil when it does not exist.
func (r *RedisCenterRepository) Get(ctx context.Context, id string) (*domain.Center, error) {
	centers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return centers[id], nil
}

// Save stores one center in the registry.
func (r *RedisCenterRepository) Save(ctx context.Context, center *domain.Center) error {
	centers, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	centers[center.ID] = center
	return r.saveAll(ctx, centers)
}

// Delete removes one center from the registry.
func (r *RedisCenterRepository) Delete(ctx context.Context, id string) error {
	centers, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	delete(centers, id)
	return r.saveAll(ctx, centers)
}

func (r *RedisCenterRepository) saveAll(ctx context.Context, centers map[string]*domain.Center) error {
	data, err := json.Marshal(centers)
	if err != nil {
		return fmt.Errorf("failed to marshal centers: %w", err)
	}

	if err := r.cache.Set(ctx, centersCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save centers to cache: %w", err)
	}
	return nil
}
