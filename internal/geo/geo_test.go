package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/maskmap/internal/apperr"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boundaryJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Japan"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [
          [[130.0, 31.0], [141.5, 35.0], [145.8, 44.0], [129.5, 33.5], [130.0, 31.0]],
          [[135.0, 34.0], [135.1, 34.0], [135.1, 34.1], [135.0, 34.0]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    }
  ]
}`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadBoundary(t *testing.T) {
	ring, err := LoadBoundary(writeFile(t, "japan.geojson", boundaryJSON))
	require.NoError(t, err)

	want := orb.Ring{{130.0, 31.0}, {141.5, 35.0}, {145.8, 44.0}, {129.5, 33.5}, {130.0, 31.0}}
	assert.Equal(t, want, ring)
}

func TestLoadBoundaryErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"invalid json", `{"type": "FeatureCollection", "features": [`},
		{"not a collection", `{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}}`},
		{"no features", `{"type": "FeatureCollection", "features": []}`},
		{"point geometry", `{"type": "FeatureCollection", "features": [{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}}]}`},
		{"empty polygon", `{"type": "FeatureCollection", "features": [{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": []}}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBoundary(writeFile(t, "boundary.geojson", tc.data))
			assert.ErrorIs(t, err, apperr.ErrParse)
		})
	}
}

func TestLoadBoundaryMissingFile(t *testing.T) {
	_, err := LoadBoundary(filepath.Join(t.TempDir(), "absent.geojson"))
	assert.ErrorIs(t, err, apperr.ErrMissingFile)
}

func TestMask(t *testing.T) {
	rings := []orb.Ring{
		{{130.0, 31.0}, {141.5, 35.0}, {145.8, 44.0}, {130.0, 31.0}},
		{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}},
		{},
	}

	world := orb.Ring{{180, 90}, {180, -90}, {-180, -90}, {-180, 90}, {180, 90}}
	for _, ring := range rings {
		mask := Mask(ring)
		require.Len(t, mask, 2)
		assert.Equal(t, world, mask[0])
		assert.Equal(t, ring, mask[1])
	}
}

func TestWithinWorld(t *testing.T) {
	assert.True(t, WithinWorld(orb.Ring{{130, 31}, {-180, -90}, {180, 90}}))
	assert.False(t, WithinWorld(orb.Ring{{130, 31}, {181, 0}}))
	assert.False(t, WithinWorld(orb.Ring{{0, -90.5}}))
	assert.True(t, WithinWorld(nil))
}
