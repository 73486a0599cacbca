package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWKTScene reads one polygon per line:
//
//	#ff0000 POLYGON((50 50, 70 50, 70 70, 50 70))
//
// The leading color is optional and defaults to white. Blank lines and lines
// starting with "//" are skipped. Only the outer ring of each polygon is kept.
func ParseWKTScene(r io.Reader) (Scene, error) {
	var s Scene
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		p, err := parseWKTPolygon(text)
		if err != nil {
			return nil, fmt.Errorf("wkt line %d: %w", line, err)
		}
		s = append(s, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	if len(s) == 0 {
		return nil, ErrNoPolygons
	}
	return s, nil
}

func parseWKTPolygon(text string) (Polygon, error) {
	p := Polygon{Color: White}
	if strings.HasPrefix(text, "#") {
		sp := strings.IndexAny(text, " \t")
		if sp < 0 {
			return Polygon{}, errors.New("color without geometry")
		}
		c, err := ParseHexColor(text[:sp])
		if err != nil {
			return Polygon{}, err
		}
		p.Color = c
		text = strings.TrimSpace(text[sp:])
	}
	if !strings.HasPrefix(strings.ToUpper(text), "POLYGON") {
		return Polygon{}, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, firstWord(text))
	}
	i := strings.Index(text, "((")
	j := strings.Index(text, ")")
	if i < 0 || j <= i+2 {
		return Polygon{}, errors.New("polygon: invalid")
	}
	for _, tup := range strings.Split(text[i+2:j], ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return Polygon{}, fmt.Errorf("polygon: bad coordinate %q", strings.TrimSpace(tup))
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			return Polygon{}, fmt.Errorf("polygon: bad coordinate %q", strings.TrimSpace(tup))
		}
		p.Points = append(p.Points, Point{x, y})
	}
	p.Points = openRing(p.Points)
	if len(p.Points) < 3 {
		return Polygon{}, errors.New("polygon: fewer than 3 vertices")
	}
	return p, nil
}

// openRing drops the closing vertex WKT and GeoJSON repeat at the end of a ring.
func openRing(pts []Point) []Point {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}

func firstWord(s string) string {
	if f := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '(' }); len(f) > 0 {
		return f[0]
	}
	return s
}
