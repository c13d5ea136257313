package geo

import "github.com/paulmach/orb"

// World extent in degrees.
const (
	MaxLon = 180.0
	MaxLat = 90.0
)

// WorldRing returns the closed ring covering the whole world, starting at the
// north-east corner and going clockwise.
func WorldRing() orb.Ring {
	return orb.Ring{
		{MaxLon, MaxLat},
		{MaxLon, -MaxLat},
		{-MaxLon, -MaxLat},
		{-MaxLon, MaxLat},
		{MaxLon, MaxLat},
	}
}

// Mask returns a polygon covering the world with the boundary as its only hole.
// Filling it shades everything except the area inside the boundary.
// The boundary ring is used unchanged.
func Mask(boundary orb.Ring) orb.Polygon {
	return orb.Polygon{WorldRing(), boundary}
}

// WithinWorld reports whether every point of the ring lies inside the world extent,
// which is required for the mask hole to be enclosed by its outer ring.
func WithinWorld(ring orb.Ring) bool {
	for _, p := range ring {
		if p.Lon() < -MaxLon || p.Lon() > MaxLon || p.Lat() < -MaxLat || p.Lat() > MaxLat {
			return false
		}
	}

	return true
}
