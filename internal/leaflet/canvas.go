// Package leaflet models a Leaflet map with its layers and renders it
// into a standalone HTML document.
package leaflet

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// LayerKind tells the page script which Leaflet constructor to use.
type LayerKind string

const (
	KindTile    LayerKind = "tile"
	KindGeoJSON LayerKind = "geojson"
	KindMarker  LayerKind = "marker"
	KindCircle  LayerKind = "circle"
)

// MarkerColors are the colors supported by Leaflet.awesome-markers.
var MarkerColors = map[string]bool{
	"red": true, "darkred": true, "lightred": true, "orange": true, "beige": true,
	"green": true, "darkgreen": true, "lightgreen": true, "blue": true, "darkblue": true,
	"lightblue": true, "cadetblue": true, "purple": true, "darkpurple": true, "pink": true,
	"white": true, "gray": true, "lightgray": true, "black": true,
}

// Layer is an element added to a Canvas.
type Layer interface {
	Kind() LayerKind
	ID() string
	base() *layerBase
}

type layerBase struct {
	LayerID string    `json:"id"`
	Type    LayerKind `json:"kind"`
}

// Kind returns the layer kind.
func (b *layerBase) Kind() LayerKind { return b.Type }

// ID returns the identifier assigned when the layer was added to a canvas.
func (b *layerBase) ID() string { return b.LayerID }

func (b *layerBase) base() *layerBase { return b }

// PathStyle holds Leaflet path options, serialized with Leaflet's own names.
type PathStyle struct {
	Color       string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	Radius      float64 `json:"radius,omitempty"` // meters, circles only
	FillOpacity float64 `json:"fillOpacity"`
	Weight      float64 `json:"weight"`
	Fill        bool    `json:"fill"`
}

// TileLayer is a raster tile source. A non-overlay tile layer is a base layer.
type TileLayer struct {
	layerBase
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Name        string `json:"name"`
	Overlay     bool   `json:"overlay"`
}

// NewTileLayer returns a base tile layer.
func NewTileLayer(url, attribution, name string) *TileLayer {
	return &TileLayer{
		layerBase:   layerBase{Type: KindTile},
		URL:         url,
		Attribution: attribution,
		Name:        name,
	}
}

// GeoJSON is a vector overlay drawn with a single style.
type GeoJSON struct {
	layerBase
	Data  *geojson.Feature `json:"data"`
	Name  string           `json:"name"`
	Style PathStyle        `json:"style"`
}

// NewGeoJSON returns an overlay drawing the feature with the given style.
func NewGeoJSON(name string, data *geojson.Feature, style PathStyle) *GeoJSON {
	return &GeoJSON{
		layerBase: layerBase{Type: KindGeoJSON},
		Name:      name,
		Data:      data,
		Style:     style,
	}
}

// Marker is a colored pin with an optional tooltip.
type Marker struct {
	layerBase
	Tooltip  string     `json:"tooltip,omitempty"`
	Color    string     `json:"color"`
	Location [2]float64 `json:"location"` // [lat, lon]
}

// NewMarker returns a marker at lat, lon. Colors outside MarkerColors are kept
// as given; awesome-markers falls back to its default icon for them.
func NewMarker(lat, lon float64, tooltip, color string) *Marker {
	if !MarkerColors[color] {
		log.Warn().
			Str("color", color).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("Unsupported marker color")
	}

	return &Marker{
		layerBase: layerBase{Type: KindMarker},
		Location:  [2]float64{lat, lon},
		Tooltip:   tooltip,
		Color:     color,
	}
}

// Circle is a circle with a radius in meters.
type Circle struct {
	layerBase
	Style    PathStyle  `json:"style"`
	Location [2]float64 `json:"location"` // [lat, lon]
}

// NewCircle returns a circle centered at lat, lon.
func NewCircle(lat, lon float64, style PathStyle) *Circle {
	return &Circle{
		layerBase: layerBase{Type: KindCircle},
		Location:  [2]float64{lat, lon},
		Style:     style,
	}
}

// Options is the map configuration passed to L.map.
type Options struct {
	MaxBounds     [2][2]float64 `json:"max_bounds"` // [[south, west], [north, east]]
	Center        [2]float64    `json:"center"`     // [lat, lon]
	Zoom          int           `json:"zoom"`
	MinZoom       int           `json:"min_zoom"`
	MaxZoom       int           `json:"max_zoom"`
	ControlScale  bool          `json:"control_scale"`
	PreferCanvas  bool          `json:"prefer_canvas"`
	ZoomAnimation bool          `json:"zoom_animation"`
	ZoomControl   bool          `json:"zoom_control"`
}

// Canvas is a map under construction: its options and the layers in the order
// they are drawn.
type Canvas struct {
	Layers []Layer `json:"layers"`
	Options
}

// NewCanvas returns an empty canvas.
func NewCanvas(opts Options) *Canvas {
	return &Canvas{Options: opts, Layers: []Layer{}}
}

// Add appends layers and assigns each a sequential id such as "marker_3".
func (c *Canvas) Add(layers ...Layer) {
	for _, l := range layers {
		l.base().LayerID = fmt.Sprintf("%s_%d", l.Kind(), len(c.Layers))
		c.Layers = append(c.Layers, l)
	}
}

// Count returns the number of layers of the given kind.
func (c *Canvas) Count(kind LayerKind) int {
	n := 0
	for _, l := range c.Layers {
		if l.Kind() == kind {
			n++
		}
	}
	return n
}
