package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectDerived(t *testing.T) {
	r := R(-200, 200, -100, 100)
	cx, cy := r.Center()
	assert.Equal(t, 0.0, cx)
	assert.Equal(t, 0.0, cy)
	assert.Equal(t, 400.0, r.Width())
	assert.Equal(t, 200.0, r.Height())
	assert.Equal(t, 2.0, r.Aspect())
	assert.True(t, r.Valid())
	assert.False(t, R(1, 1, 0, 1).Valid())
	assert.False(t, R(0, 1, 2, 1).Valid())
}

func TestRectCorners(t *testing.T) {
	r := R(-10, 20, -5, 15)
	assert.Equal(t, []Point{{-10, -5}, {20, -5}, {20, 15}, {-10, 15}}, r.Corners())
}

func TestSceneBounds(t *testing.T) {
	b, ok := DefaultScene().Bounds()
	require.True(t, ok)
	assert.Equal(t, R(-300, 375, -175, 250), b)

	_, ok = Scene{}.Bounds()
	assert.False(t, ok)
}

func TestSceneFitWorld(t *testing.T) {
	w, ok := DefaultScene().FitWorld(2)
	require.True(t, ok)
	assert.InDelta(t, -430, w.Left, 1e-9)
	assert.InDelta(t, 505, w.Right, 1e-9)
	assert.InDelta(t, -196.25, w.Bottom, 1e-9)
	assert.InDelta(t, 271.25, w.Top, 1e-9)

	tall, ok := Scene{{Points: []Point{{0, 0}, {10, 0}, {10, 100}}}}.FitWorld(2)
	require.True(t, ok)
	assert.InDelta(t, 110, tall.Height(), 1e-9)
	assert.InDelta(t, 220, tall.Width(), 1e-9)

	_, ok = Scene{{Points: []Point{{0, 0}, {1, 1}, {2, 2}}}}.FitWorld(2)
	assert.False(t, ok, "collinear scene has no area")
	_, ok = Scene{}.FitWorld(2)
	assert.False(t, ok)
	_, ok = DefaultScene().FitWorld(0)
	assert.False(t, ok)
}

func TestFixedRectsAreCopies(t *testing.T) {
	w := WorldView()
	w.Left = 0
	assert.Equal(t, R(-400, 400, -200, 200), WorldView())
	c := DefaultClip()
	c.Top = 0
	assert.Equal(t, R(-200, 200, -100, 100), DefaultClip())
}

func TestDefaultSceneIsFresh(t *testing.T) {
	a := DefaultScene()
	a[0].Points[0] = Point{999, 999}
	b := DefaultScene()
	assert.Equal(t, Point{50, 50}, b[0].Points[0])
	assert.Len(t, b, 6)
}

func TestHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0, 0}, c)
	assert.Equal(t, "#ff0000", c.Hex())

	c, err = ParseHexColor("0f0")
	require.NoError(t, err)
	assert.Equal(t, Color{0, 1, 0}, c)

	assert.Equal(t, "#0066cc", Color{0, 0.4, 0.8}.Hex())

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)
}
