package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Folder>
    <Placemark>
      <name>square</name>
      <Style><PolyStyle><color>ff0000ff</color></PolyStyle></Style>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        50,50,0 70,50,0 70,70,0 50,70,0 50,50,0
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
  </Folder>
  <Placemark>
    <Point><coordinates>1,2</coordinates></Point>
  </Placemark>
  <Placemark>
    <Style><PolyStyle><color>7fff0000</color></PolyStyle></Style>
    <MultiGeometry>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>-30,150 -10,150 -20,200</coordinates></LinearRing></outerBoundaryIs></Polygon>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>0,0 1,0 1,1</coordinates></LinearRing></outerBoundaryIs></Polygon>
    </MultiGeometry>
  </Placemark>
</Document>
</kml>`

func TestParseKMLScene(t *testing.T) {
	s, err := ParseKMLScene(strings.NewReader(kmlDoc))
	require.NoError(t, err)
	require.Len(t, s, 3)

	assert.Equal(t, Color{1, 0, 0}, s[0].Color)
	assert.Equal(t, []Point{{50, 50}, {70, 50}, {70, 70}, {50, 70}}, s[0].Points)

	assert.Equal(t, Color{0, 0, 1}, s[1].Color)
	assert.Equal(t, []Point{{-30, 150}, {-10, 150}, {-20, 200}}, s[1].Points)
	assert.Equal(t, s[1].Color, s[2].Color)
}

func TestParseKMLSceneErrors(t *testing.T) {
	_, err := ParseKMLScene(strings.NewReader(`<kml><Placemark><Point><coordinates>1,2</coordinates></Point></Placemark></kml>`))
	assert.ErrorIs(t, err, ErrNoPolygons)

	_, err = ParseKMLScene(strings.NewReader(`<kml><Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>a,b 1,1 2,2</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></kml>`))
	assert.ErrorContains(t, err, "bad coordinate")

	_, err = ParseKMLScene(strings.NewReader(`<kml><Placemark><Style><PolyStyle><color>red</color></PolyStyle></Style></Placemark></kml>`))
	assert.ErrorContains(t, err, "bad color")

	_, err = ParseKMLScene(strings.NewReader(`<kml><Placemark>`))
	assert.ErrorContains(t, err, "kml")
}

func TestLoadKML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shapes.kml")
	require.NoError(t, os.WriteFile(p, []byte(kmlDoc), 0o644))
	s, err := LoadScene(p)
	require.NoError(t, err)
	assert.Len(t, s, 3)
}
