package ports

import (
	"context"

	"github.com/rahulphari/eye/internal/features/centers/domain"
)

// CenterService defines the primary port for center management.
type CenterService interface {
	SaveCenter(ctx context.Context, center *domain.Center) error
	GetCenter(ctx context.Context, id string) (*domain.Center, error)
	ListCenters(ctx context.Context) ([]*domain.Center, error)
	RemoveCenter(ctx context.Context, id string) error
}

// CenterRepository defines the secondary port for center storage.
// Get returns nil, nil when the center does not exist.
type CenterRepository interface {
	Save(ctx context.Context, center *domain.Center) error
	Get(ctx context.Context, id string) (*domain.Center, error)
	GetAll(ctx context.Context) (map[string]*domain.Center, error)
	Delete(ctx context.Context, id string) error
}
