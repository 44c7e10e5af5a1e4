package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Place is a named point exported as a GeoJSON feature.
type Place struct {
	Properties map[string]any
	ID         string
	Name       string
	Kind       string
	Coordinate
}

// FeatureCollection builds a GeoJSON collection containing one Point feature
// per place and, when the track has at least two vertices, a LineString
// feature for the walking route.
func FeatureCollection(places []Place, track []Coordinate) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var all orb.MultiPoint

	for i := range places {
		p := places[i]

		f := geojson.NewFeature(p.Point())
		f.ID = p.ID
		f.Properties["name"] = p.Name

		if p.Kind != "" {
			f.Properties["kind"] = p.Kind
		}

		for k, v := range p.Properties {
			f.Properties[k] = v
		}

		fc.Append(f)

		all = append(all, p.Point())
	}

	if len(track) > 1 {
		line := make(orb.LineString, 0, len(track))
		for _, c := range track {
			line = append(line, c.Point())
		}

		f := geojson.NewFeature(line)
		f.Properties["name"] = "track"
		f.Properties["length_km"] = PathLength(track)

		fc.Append(f)

		all = append(all, line...)
	}

	if len(all) > 0 {
		fc.BBox = geojson.NewBBox(all.Bound())
	}

	return fc
}

// Center returns the centre of the bounding box of the given coordinates.
func Center(coords []Coordinate) (Coordinate, bool) {
	if len(coords) == 0 {
		return Coordinate{}, false
	}

	mp := make(orb.MultiPoint, 0, len(coords))
	for _, c := range coords {
		mp = append(mp, c.Point())
	}

	center := mp.Bound().Center()

	return Coordinate{Lat: center.Lat(), Lng: center.Lon()}, true
}
