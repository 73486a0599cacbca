package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"camview/internal/input"
)

// namedKeys are the non-text keys, named the way the terminal front end
// names them.
var namedKeys = []struct {
	key  ebiten.Key
	name input.Name
}{
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyF1, "f1"},
	{ebiten.KeyF2, "f2"},
	{ebiten.KeyEscape, "esc"},
}

func pressedKeys() []input.Name {
	var out []input.Name
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			out = append(out, "ctrl+c")
		}
	}
	for _, k := range namedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, k.name)
		}
	}
	return appendChars(out, ebiten.AppendInputChars(nil))
}

// appendChars names typed characters by themselves, so "q", "Q" and "+"
// match their bindings directly.
func appendChars(out []input.Name, chars []rune) []input.Name {
	for _, r := range chars {
		out = append(out, input.Name(string(r)))
	}
	return out
}
