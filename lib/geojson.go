package lib

import "github.com/golang/geo/r2"
import "github.com/pkg/errors"
import "github.com/twpayne/go-geom"
import "github.com/twpayne/go-geom/encoding/geojson"

// MultiPathGeometry converts planar paths to a geometry. Closed outlines
// become a MultiPolygon, open paths a MultiLineString.
func MultiPathGeometry(paths [][]r2.Point, closed bool) (geom.T, error) {
	if closed {
		coords := make([][][]geom.Coord, 0, len(paths))
		for _, path := range paths {
			if len(path) == 0 {
				continue
			}
			ring := make([]geom.Coord, 0, len(path)+1)
			for _, p := range path {
				ring = append(ring, geom.Coord{p.X, p.Y})
			}
			ring = append(ring, geom.Coord{path[0].X, path[0].Y})
			coords = append(coords, [][]geom.Coord{ring})
		}
		g, err := geom.NewMultiPolygon(geom.XY).SetCoords(coords)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	coords := make([][]geom.Coord, 0, len(paths))
	for _, path := range paths {
		line := make([]geom.Coord, 0, len(path))
		for _, p := range path {
			line = append(line, geom.Coord{p.X, p.Y})
		}
		coords = append(coords, line)
	}
	g, err := geom.NewMultiLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ButtonGeoJSON encodes the outlines of the shapes of the button active at
// the given time as a GeoJSON feature collection, one feature per shape.
func ButtonGeoJSON(button *Button, time float64) ([]byte, error) {
	collection := geojson.FeatureCollection{}
	for i, shape := range button.ActiveShapes(time) {
		g, err := MultiPathGeometry(shape.PlanarGeometry(), true)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		base := shape.Base()
		collection.Features = append(collection.Features, &geojson.Feature{
			ID:       button.Name,
			Geometry: g,
			Properties: map[string]interface{}{
				"button":  button.Name,
				"shape":   i,
				"type":    string(shape.Type()),
				"centerX": base.CenterX,
				"centerY": base.CenterY,
			},
		})
	}
	return collection.MarshalJSON()
}
