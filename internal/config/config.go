// Package config holds the map configuration shared by the pipeline stages.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/woozymasta/maskmap/internal/apperr"

	"gopkg.in/yaml.v3"
)

// Config represents the map configuration. Built once at startup from
// Default and an optional YAML overlay, then passed by value.
type Config struct {
	Title     string        `yaml:"title" json:"title"`
	Tiles     TileSource    `yaml:"tiles" json:"tiles"`
	Mask      MaskStyle     `yaml:"mask" json:"mask"`
	Circle    CircleStyle   `yaml:"circle" json:"circle"`
	MaxBounds [2][2]float64 `yaml:"max_bounds" json:"max_bounds"` // [[south, west], [north, east]]
	Center    [2]float64    `yaml:"center" json:"center"`         // [lat, lon]
	Zoom      int           `yaml:"zoom" json:"zoom"`
	MinZoom   int           `yaml:"min_zoom" json:"min_zoom"`
	MaxZoom   int           `yaml:"max_zoom" json:"max_zoom"`
	Minify    bool          `yaml:"minify" json:"minify"`
}

// TileSource describes the base tile layer.
type TileSource struct {
	URL         string `yaml:"url" json:"url"`
	Attribution string `yaml:"attribution" json:"attribution"`
	Name        string `yaml:"name" json:"name"`
}

// MaskStyle is the fill style of the area outside the boundary.
type MaskStyle struct {
	Name        string  `yaml:"name" json:"name"`
	FillColor   string  `yaml:"fill_color" json:"fill_color"`
	Color       string  `yaml:"color" json:"color"`
	FillOpacity float64 `yaml:"fill_opacity" json:"fill_opacity"`
	Weight      float64 `yaml:"weight" json:"weight"`
}

// CircleStyle is the style of the optional circle drawn around a point.
type CircleStyle struct {
	Radius      float64 `yaml:"radius" json:"radius"` // meters
	FillOpacity float64 `yaml:"fill_opacity" json:"fill_opacity"`
	Weight      float64 `yaml:"weight" json:"weight"`
}

// Default returns the built-in configuration: a map of Japan on GSI standard tiles.
func Default() Config {
	return Config{
		Title:     "Japan map",
		Center:    [2]float64{36.2048, 138.2529},
		Zoom:      5,
		MinZoom:   5,
		MaxZoom:   12,
		MaxBounds: [2][2]float64{{20.0, 122.0}, {46.0, 154.0}},
		Tiles: TileSource{
			URL:         "https://cyberjapandata.gsi.go.jp/xyz/std/{z}/{x}/{y}.png",
			Attribution: "地図出典：国土地理院",
			Name:        "国土地理院タイル",
		},
		Mask: MaskStyle{
			Name:        "マスク",
			FillColor:   "gray",
			Color:       "gray",
			FillOpacity: 0.8,
			Weight:      0,
		},
		Circle: CircleStyle{
			Radius:      10000,
			FillOpacity: 0.1,
			Weight:      3,
		},
		Minify: true,
	}
}

// Load reads the YAML configuration file from the specified path and overlays
// it onto Default. Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: config %s: %w", apperr.ErrMissingFile, path, err)
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that coordinates are finite and that zoom levels and bounds are ordered.
func (c Config) Validate() error {
	coords := []float64{c.Center[0], c.Center[1], c.MaxBounds[0][0], c.MaxBounds[0][1], c.MaxBounds[1][0], c.MaxBounds[1][1]}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("center %v or max_bounds %v is not finite", c.Center, c.MaxBounds)
		}
	}
	if c.Circle.Radius < 0 || math.IsNaN(c.Circle.Radius) || math.IsInf(c.Circle.Radius, 0) {
		return fmt.Errorf("circle.radius %v must be a finite non-negative number", c.Circle.Radius)
	}

	if c.MinZoom > c.MaxZoom {
		return fmt.Errorf("min_zoom %d is greater than max_zoom %d", c.MinZoom, c.MaxZoom)
	}
	if c.Zoom < c.MinZoom || c.Zoom > c.MaxZoom {
		return fmt.Errorf("zoom %d is outside [%d, %d]", c.Zoom, c.MinZoom, c.MaxZoom)
	}

	sw, ne := c.MaxBounds[0], c.MaxBounds[1]
	if sw[0] >= ne[0] || sw[1] >= ne[1] {
		return fmt.Errorf("max_bounds %v: south-west corner must be below and left of north-east", c.MaxBounds)
	}
	if c.Tiles.URL == "" {
		return fmt.Errorf("tiles.url is empty")
	}

	return nil
}
