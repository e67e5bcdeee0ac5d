package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	forecastdomain "github.com/rahulphari/eye/internal/features/forecast/domain"
)

var (
	// ErrMissingCenterID is returned when a center has no identifier.
	ErrMissingCenterID = errors.New("center id is required")
	// ErrInvalidCoordinates is returned when the coordinates are not "lon,lat".
	ErrInvalidCoordinates = errors.New("invalid coordinates, expected \"lon,lat\"")
)

// coordsPattern matches a "lon,lat" decimal pair.
var coordsPattern = regexp.MustCompile(`^-?\d+(\.\d+)?,-?\d+(\.\d+)?$`)

// Center is one warehouse center with its dock coordinates and
// operating configuration.
type Center struct {
	// ID is the center identifier as it appears in the source system.
	ID string `json:"id"`
	// Name is the human-readable center name.
	Name string `json:"name"`
	// Coords is the dock location as "lon,lat", used as the destination
	// for live route estimation. Empty disables GPS for the center.
	Coords string `json:"coords"`
	// GPSEnabled toggles live route estimation for this center.
	GPSEnabled bool `json:"gps_enabled"`
	// Config holds the center's forecast parameters.
	Config forecastdomain.CenterConfig `json:"config"`
	// UpdatedAt is when the center was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCenter creates a Center with the default forecast configuration
// and validates it.
func NewCenter(id, name, coords string, gpsEnabled bool) (*Center, error) {
	c := &Center{
		ID:         id,
		Name:       name,
		Coords:     coords,
		GPSEnabled: gpsEnabled,
		Config:     forecastdomain.DefaultCenterConfig(),
		UpdatedAt:  time.Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewDefaultCenter auto-registers a center first seen during a vehicle
// sync: no coordinates yet, GPS off, default config. The display name is
// derived from the identifier (underscores become spaces).
func NewDefaultCenter(id string) (*Center, error) {
	return NewCenter(id, strings.ReplaceAll(id, "_", " "), "", false)
}

// Validate checks the center's identity and coordinate format.
func (c *Center) Validate() error {
	if c.ID == "" {
		return ErrMissingCenterID
	}
	if c.Coords != "" && !coordsPattern.MatchString(c.Coords) {
		return ErrInvalidCoordinates
	}
	return nil
}
