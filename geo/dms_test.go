package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldtrack/utils"
)

func TestDMS_Decimal(t *testing.T) {
	tests := []struct {
		name string
		dms  DMS
		want float64
	}{
		{"equator", DMS{0, 0, 0, North}, 0},
		{"north", DMS{40, 30, 0, North}, 40.5},
		{"south negates", DMS{40, 30, 0, South}, -40.5},
		{"east", DMS{3, 42, 36, East}, 3.71},
		{"west negates", DMS{3, 42, 36, West}, -3.71},
		{"seconds precision", DMS{10, 0, 36, North}, 10.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dms.Decimal()
			require.NoError(t, err)
			utils.AssertClose(t, got, tt.want, 1e-9)
		})
	}
}

func TestDMS_Decimal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		dms  DMS
	}{
		{"latitude degrees out of range", DMS{91, 0, 0, North}},
		{"longitude degrees out of range", DMS{181, 0, 0, East}},
		{"negative degrees", DMS{-1, 0, 0, North}},
		{"minutes out of range", DMS{10, 60, 0, North}},
		{"seconds out of range", DMS{10, 0, 60, North}},
		{"unknown hemisphere", DMS{10, 0, 0, Hemisphere("X")}},
		{"sum exceeds pole", DMS{90, 30, 0, North}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.dms.Decimal()
			assert.Error(t, err)
		})
	}
}

func TestDMS_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		lat := -90 + rng.Float64()*180
		lon := -180 + rng.Float64()*360

		gotLat, err := LatitudeDMS(lat).Decimal()
		require.NoError(t, err)
		utils.AssertClose(t, gotLat, lat, 1e-9)

		gotLon, err := LongitudeDMS(lon).Decimal()
		require.NoError(t, err)
		utils.AssertClose(t, gotLon, lon, 1e-9)
	}
}

func TestEncodeLocation(t *testing.T) {
	// Known code for the Google Zurich office, from the OLC reference data.
	code := EncodeLocation(47.365562, 8.524813)
	assert.Equal(t, "8FVC9G8F+6X", code)

	// Pure function: same input, same code.
	assert.Equal(t, code, EncodeLocation(47.365562, 8.524813))
}

func TestRandomPosition_AlwaysConvertible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomPosition(rng)
		lat, err := p.Latitude.Decimal()
		require.NoError(t, err)
		lon, err := p.Longitude.Decimal()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lat, -90.0)
		assert.LessOrEqual(t, lat, 90.0)
		assert.GreaterOrEqual(t, lon, -180.0)
		assert.LessOrEqual(t, lon, 180.0)
	}
}
