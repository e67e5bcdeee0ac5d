package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCenter_AppliesDefaultConfig(t *testing.T) {
	center, err := NewCenter("DEL_HUB", "Delhi Hub", "77.1025,28.7041", true)
	require.NoError(t, err)

	assert.Equal(t, 3, center.Config.BaysAvailable)
	assert.Equal(t, 350.0, center.Config.UnloadRatePerHourPerBay)
	assert.Equal(t, 22, center.Config.Shifts.C.StartHour)
	assert.Equal(t, 7, center.Config.Shifts.C.EndHour)
	assert.False(t, center.UpdatedAt.IsZero())
}

func TestNewCenter_MissingID(t *testing.T) {
	_, err := NewCenter("", "Delhi Hub", "", false)
	assert.ErrorIs(t, err, ErrMissingCenterID)
}

func TestNewCenter_InvalidCoords(t *testing.T) {
	_, err := NewCenter("DEL_HUB", "Delhi Hub", "28.7041N 77.1025E", true)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestNewCenter_EmptyCoordsAllowed(t *testing.T) {
	center, err := NewCenter("DEL_HUB", "Delhi Hub", "", false)
	require.NoError(t, err)
	assert.Empty(t, center.Coords)
}

func TestNewCenter_NegativeCoords(t *testing.T) {
	center, err := NewCenter("BOG_HUB", "Bogota Hub", "-74.0721,4.7110", true)
	require.NoError(t, err)
	assert.Equal(t, "-74.0721,4.7110", center.Coords)
}

func TestNewDefaultCenter(t *testing.T) {
	center, err := NewDefaultCenter("Gurgaon_Bilaspur_GW")
	require.NoError(t, err)

	assert.Equal(t, "Gurgaon_Bilaspur_GW", center.ID)
	assert.Equal(t, "Gurgaon Bilaspur GW", center.Name)
	assert.False(t, center.GPSEnabled)
	assert.Empty(t, center.Coords)
}
