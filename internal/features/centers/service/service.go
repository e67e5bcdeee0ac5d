package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahulphari/eye/internal/features/centers/domain"
	"github.com/rahulphari/eye/internal/features/centers/ports"
)

// ErrCenterNotFound is returned when the requested center does not exist.
var ErrCenterNotFound = errors.New("center not found")

// CenterServiceImpl implements ports.CenterService.
type CenterServiceImpl struct {
	repo ports.CenterRepository
}

// NewCenterService creates a new CenterServiceImpl.
func NewCenterService(repo ports.CenterRepository) *CenterServiceImpl {
	return &CenterServiceImpl{
		repo: repo,
	}
}

// SaveCenter validates and persists a center.
func (s *CenterServiceImpl) SaveCenter(ctx context.Context, center *domain.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, center); err != nil {
		return fmt.Errorf("service: failed to save center: %w", err)
	}
	return nil
}

// GetCenter retrieves one center.
func (s *CenterServiceImpl) GetCenter(ctx context.Context, id string) (*domain.Center, error) {
	center, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get center: %w", err)
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}
	return center, nil
}

// ListCenters retrieves every registered center.
func (s *CenterServiceImpl) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	centers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list centers: %w", err)
	}

	out := make([]*domain.Center, 0, len(centers))
	for _, c := range centers {
		out = append(out, c)
	}
	return out, nil
}

// RemoveCenter deletes one center.
func (s *CenterServiceImpl) RemoveCenter(ctx context.Context, id string) error {
	center, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get center: %w", err)
	}
	if center == nil {
		return ErrCenterNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to remove center: %w", err)
	}
	return nil
}
