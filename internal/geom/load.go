package geom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoPolygons          = errors.New("no polygons found")
	ErrUnsupportedFormat   = errors.New("unsupported scene format")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)

// LoadScene loads a scene file, choosing the parser by extension.
func LoadScene(path string) (Scene, error) {
	var parse func(io.Reader) (Scene, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wkt":
		parse = ParseWKTScene
	case ".geojson", ".json":
		parse = ParseGeoJSONScene
	case ".kml":
		parse = ParseKMLScene
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}
