// Package geo loads the country boundary and builds the mask polygon around it.
package geo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/woozymasta/maskmap/internal/apperr"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// LoadBoundary reads a GeoJSON FeatureCollection and returns the outer ring
// of the first feature's polygon, i.e. features[0].geometry.coordinates[0].
// The ring is returned as given: closure and winding order are not checked.
func LoadBoundary(path string) (orb.Ring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: boundary %s", apperr.ErrMissingFile, path)
		}
		return nil, fmt.Errorf("%w: read boundary %s: %w", apperr.ErrParse, path, err)
	}

	ring, err := ParseBoundary(data)
	if err != nil {
		return nil, fmt.Errorf("boundary %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("points", len(ring)).
		Msg("Boundary loaded")

	return ring, nil
}

// ParseBoundary extracts the boundary ring from raw GeoJSON data.
func ParseBoundary(data []byte) (orb.Ring, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrParse, err)
	}

	if len(fc.Features) == 0 || fc.Features[0] == nil {
		return nil, fmt.Errorf("%w: feature collection has no features", apperr.ErrParse)
	}

	switch g := fc.Features[0].Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil, fmt.Errorf("%w: first feature has an empty polygon", apperr.ErrParse)
		}
		return g[0], nil
	case nil:
		return nil, fmt.Errorf("%w: first feature has no geometry", apperr.ErrParse)
	default:
		return nil, fmt.Errorf("%w: first feature is a %s, want Polygon", apperr.ErrParse, g.GeoJSONType())
	}
}
