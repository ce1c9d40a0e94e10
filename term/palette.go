package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

// Palette maps a shape id to its tile color. Index 0 is unused.
var Palette = [tetris.ShapeCount + 1]tcell.Color{
	tcell.ColorDefault,
	tcell.NewRGBColor(0, 255, 255), // I cyan
	tcell.NewRGBColor(0, 0, 255),   // J blue
	tcell.NewRGBColor(255, 165, 0), // L orange
	tcell.NewRGBColor(255, 255, 0), // O yellow
	tcell.NewRGBColor(0, 255, 0),   // S lime
	tcell.NewRGBColor(128, 0, 128), // T purple
	tcell.NewRGBColor(255, 0, 0),   // Z red
}

func tileStyle(id tetris.ShapeID) tcell.Style {
	if !id.Valid() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(Palette[id])
}
