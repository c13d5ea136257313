// Package mapgen runs the map pipeline: boundary, mask, points, canvas, document.
package mapgen

import (
	"github.com/woozymasta/maskmap/internal/config"
	"github.com/woozymasta/maskmap/internal/geo"
	"github.com/woozymasta/maskmap/internal/leaflet"
	"github.com/woozymasta/maskmap/internal/points"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Inputs names the files of a single run.
type Inputs struct {
	PointsPath   string
	BoundaryPath string
	OutputPath   string
	Sheet        string // empty selects the first sheet
}

// Dataset is everything read from disk before the map is assembled.
type Dataset struct {
	Boundary orb.Ring
	Points   []points.Record
}

// Load reads the boundary and then the points. Both files are fully read
// and closed before Load returns.
func Load(in Inputs) (Dataset, error) {
	boundary, err := geo.LoadBoundary(in.BoundaryPath)
	if err != nil {
		return Dataset{}, err
	}

	if !geo.WithinWorld(boundary) {
		log.Warn().
			Str("path", in.BoundaryPath).
			Msg("Boundary reaches outside the world extent, mask hole is not fully enclosed")
	}

	records, err := points.Load(in.PointsPath, in.Sheet)
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{Boundary: boundary, Points: records}, nil
}

// Build assembles the canvas: base tiles, the mask, then one marker and an
// optional circle per point, in spreadsheet order.
func Build(cfg config.Config, ds Dataset) *leaflet.Canvas {
	c := leaflet.NewCanvas(leaflet.Options{
		Center:        cfg.Center,
		Zoom:          cfg.Zoom,
		MinZoom:       cfg.MinZoom,
		MaxZoom:       cfg.MaxZoom,
		MaxBounds:     cfg.MaxBounds,
		ControlScale:  true,
		PreferCanvas:  true,
		ZoomAnimation: true,
		ZoomControl:   true,
	})

	c.Add(leaflet.NewTileLayer(cfg.Tiles.URL, cfg.Tiles.Attribution, cfg.Tiles.Name))

	c.Add(leaflet.NewGeoJSON(
		cfg.Mask.Name,
		geojson.NewFeature(geo.Mask(ds.Boundary)),
		leaflet.PathStyle{
			FillColor:   cfg.Mask.FillColor,
			Color:       cfg.Mask.Color,
			FillOpacity: cfg.Mask.FillOpacity,
			Weight:      cfg.Mask.Weight,
			Fill:        true,
		},
	))

	circles := 0
	for _, p := range ds.Points {
		c.Add(leaflet.NewMarker(p.Lat, p.Lon, p.Info, p.Color))

		if !p.ShowCircle {
			continue
		}

		c.Add(leaflet.NewCircle(p.Lat, p.Lon, leaflet.PathStyle{
			Radius:      cfg.Circle.Radius,
			Color:       p.CircleColor,
			FillColor:   p.CircleColor,
			FillOpacity: cfg.Circle.FillOpacity,
			Weight:      cfg.Circle.Weight,
			Fill:        true,
		}))
		circles++
	}

	log.Debug().
		Int("markers", len(ds.Points)).
		Int("circles", circles).
		Int("layers", len(c.Layers)).
		Msg("Map assembled")

	return c
}

// Generate runs the whole pipeline and writes the document to in.OutputPath.
// The first error aborts the run; nothing is written unless every stage succeeded.
func Generate(cfg config.Config, in Inputs) (*leaflet.Canvas, error) {
	ds, err := Load(in)
	if err != nil {
		return nil, err
	}

	c := Build(cfg, ds)

	opts := leaflet.RenderOptions{Title: cfg.Title, Minify: cfg.Minify}
	if err := leaflet.Save(in.OutputPath, c, opts); err != nil {
		return nil, err
	}

	log.Info().
		Str("path", in.OutputPath).
		Int("markers", c.Count(leaflet.KindMarker)).
		Int("circles", c.Count(leaflet.KindCircle)).
		Msg("Map created")

	return c, nil
}
