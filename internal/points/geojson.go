package points

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts records into Point features, carrying the
// optional fields as properties.
func FeatureCollection(records []Record) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range records {
		f := geojson.NewFeature(orb.Point{r.Lon, r.Lat})
		f.Properties[ColInfo] = r.Info
		f.Properties[ColColor] = r.Color
		f.Properties[ColShowCircle] = r.ShowCircle
		f.Properties[ColCircleColor] = r.CircleColor
		fc.Append(f)
	}

	return fc
}
