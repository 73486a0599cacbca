package geom

import (
	"encoding/json"
	"fmt"
	"io"
)

type geoFeature struct {
	Type       string            `json:"type"`
	Geometry   *geoGeometry      `json:"geometry"`
	Properties map[string]any    `json:"properties"`
	Features   []json.RawMessage `json:"features"`
}

type geoGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseGeoJSONScene reads Polygon and MultiPolygon geometries from a
// Feature, FeatureCollection or bare geometry. A feature's "fill" property
// (#rrggbb) sets its color; otherwise white. Holes are ignored.
func ParseGeoJSONScene(r io.Reader) (Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var root geoFeature
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var s Scene
	switch root.Type {
	case "FeatureCollection":
		for i, raw := range root.Features {
			var f geoFeature
			if err := json.Unmarshal(raw, &f); err != nil {
				return nil, fmt.Errorf("geojson feature %d: %w", i, err)
			}
			if s, err = appendFeature(s, f); err != nil {
				return nil, fmt.Errorf("geojson feature %d: %w", i, err)
			}
		}
	case "Feature":
		if s, err = appendFeature(s, root); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
	default:
		var g geoGeometry
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		if s, err = appendGeometry(s, g, White); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
	}
	if len(s) == 0 {
		return nil, ErrNoPolygons
	}
	return s, nil
}

func appendFeature(s Scene, f geoFeature) (Scene, error) {
	if f.Geometry == nil {
		return s, nil
	}
	col := White
	if v, ok := f.Properties["fill"].(string); ok {
		c, err := ParseHexColor(v)
		if err != nil {
			return nil, err
		}
		col = c
	}
	return appendGeometry(s, *f.Geometry, col)
}

func appendGeometry(s Scene, g geoGeometry, col Color) (Scene, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("polygon: %w", err)
		}
		return appendOuterRing(s, rings, col), nil
	case "MultiPolygon":
		var polys [][][][2]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("multipolygon: %w", err)
		}
		for _, rings := range polys {
			s = appendOuterRing(s, rings, col)
		}
		return s, nil
	case "Point", "MultiPoint", "LineString", "MultiLineString":
		// nothing to fill
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, g.Type)
}

func appendOuterRing(s Scene, rings [][][2]float64, col Color) Scene {
	if len(rings) == 0 {
		return s
	}
	pts := make([]Point, 0, len(rings[0]))
	for _, c := range rings[0] {
		pts = append(pts, Point{c[0], c[1]})
	}
	pts = openRing(pts)
	if len(pts) < 3 {
		return s
	}
	return append(s, Polygon{Points: pts, Color: col})
}
