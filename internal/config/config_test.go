package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camview/internal/camera"
	"camview/internal/geom"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1000, c.Window.Width)
	assert.Equal(t, 250, c.Window.Height)
	assert.Equal(t, geom.DefaultClip(), c.Camera.Clip.Rect())
	assert.Equal(t, geom.WorldView(), c.World.Rect())
	assert.Equal(t, camera.DefaultSettings(), c.Settings())
	assert.Empty(t, c.Scene.Path)
}

func TestParseOverridesDefaults(t *testing.T) {
	src := `
[window]
width = 800

[camera]
pan_step = 10
min_width = 50

[camera.clip]
left = -100
right = 100
bottom = -50
top = 50

[scene]
path = "shapes.kml"

[keys]
pan-left = ["h"]
`
	c, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 250, c.Window.Height)
	assert.Equal(t, 10.0, c.Camera.PanStep)
	assert.Equal(t, 0.8, c.Camera.ZoomIn)
	assert.Equal(t, 50.0, c.Settings().MinWidth)
	assert.Equal(t, geom.R(-100, 100, -50, 50), c.Camera.Clip.Rect())
	assert.Equal(t, []string{"h"}, c.Keys["pan-left"])
	assert.Equal(t, "shapes.kml", c.Scene.Path)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": "[camera]\nzoom = 2\n",
		"zoom in":     "[camera]\nzoom_in = 1.5\n",
		"zoom out":    "[camera]\nzoom_out = 0.5\n",
		"pan step":    "[camera]\npan_step = 0\n",
		"bounds":      "[camera]\nmin_width = 10\nmax_width = 5\n",
		"negative":    "[camera]\nmin_width = -1\n",
		"empty clip":  "[camera.clip]\nleft = 5\nright = 5\n",
		"empty world": "[world]\nbottom = 300\n",
		"window":      "[window]\nheight = 0\n",
		"key command": "[keys]\nspin = [\"s\"]\n",
		"no keys":     "[keys]\nquit = []\n",
	}
	for name, src := range cases {
		_, err := Parse(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}

	_, err := Parse(strings.NewReader("[camera\n"))
	var derr *toml.DecodeError
	assert.ErrorAs(t, err, &derr)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	dir := t.TempDir()
	p := filepath.Join(dir, "camview.toml")
	require.NoError(t, os.WriteFile(p, []byte("[scene]\npath = \"shapes.wkt\"\n"), 0o644))
	c, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, "shapes.wkt", c.Scene.Path)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(p, []byte("[camera]\nzoom_in = 2\n"), 0o644))
	_, err = Load(p)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "config: parse "+p)
}
