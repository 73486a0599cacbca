package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type kmlPolygon struct {
	Outer string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

type kmlPlacemark struct {
	Color    string       `xml:"Style>PolyStyle>color"`
	Polygons []kmlPolygon `xml:"Polygon"`
	Multi    []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

// ParseKMLScene extracts Placemark polygons at any depth of a KML document.
// KML coordinates are "x,y[,alt]"; altitude is ignored. An inline PolyStyle
// color (aabbggrr) sets the fill, otherwise it is white.
func ParseKMLScene(r io.Reader) (Scene, error) {
	var s Scene
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		col := White
		if pm.Color != "" {
			if col, err = parseKMLColor(pm.Color); err != nil {
				return nil, err
			}
		}
		for _, poly := range append(pm.Polygons, pm.Multi...) {
			pts, err := parseKMLCoords(poly.Outer)
			if err != nil {
				return nil, err
			}
			if len(pts) < 3 {
				continue
			}
			s = append(s, Polygon{Points: pts, Color: col})
		}
	}
	if len(s) == 0 {
		return nil, ErrNoPolygons
	}
	return s, nil
}

// coordinates may contain multiple tuples separated by whitespace
func parseKMLCoords(text string) ([]Point, error) {
	var pts []Point
	for _, tuple := range strings.Fields(text) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("kml: bad coordinate %q", tuple)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("kml: bad coordinate %q", tuple)
		}
		pts = append(pts, Point{x, y})
	}
	return openRing(pts), nil
}

func parseKMLColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 8 {
		return Color{}, fmt.Errorf("kml: bad color %q", s)
	}
	ch := func(shift uint) float64 { return float64(v>>shift&0xff) / 255 }
	return Color{R: ch(0), G: ch(8), B: ch(16)}, nil
}
