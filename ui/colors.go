package ui

import "image/color"

// Warm beige chrome with tiles shifting toward orange as values grow.
var (
	backgroundColor = color.RGBA{250, 248, 239, 255}
	boardColor      = color.RGBA{187, 173, 160, 255}
	emptyCellColor  = color.RGBA{205, 193, 180, 255}
	darkTextColor   = color.RGBA{119, 110, 101, 255}
	lightTextColor  = color.RGBA{249, 246, 242, 255}
	superTileColor  = color.RGBA{60, 58, 50, 255}

	wonOverlayColor  = color.RGBA{237, 194, 46, 128}
	overOverlayColor = color.RGBA{238, 228, 218, 186}
)

var tileColors = map[int]color.RGBA{
	2:    {238, 228, 218, 255},
	4:    {237, 224, 200, 255},
	8:    {242, 177, 121, 255},
	16:   {245, 149, 99, 255},
	32:   {246, 124, 95, 255},
	64:   {246, 94, 59, 255},
	128:  {237, 207, 114, 255},
	256:  {237, 204, 97, 255},
	512:  {237, 200, 80, 255},
	1024: {237, 197, 63, 255},
	2048: {237, 194, 46, 255},
}

// tileColor returns the fill color for a tile value. Values beyond 2048 all
// share the dark super tile color.
func tileColor(value int) color.RGBA {
	if value == 0 {
		return emptyCellColor
	}
	if c, ok := tileColors[value]; ok {
		return c
	}
	return superTileColor
}

// tileTextColor returns a readable text color for a tile value
func tileTextColor(value int) color.RGBA {
	if value <= 4 {
		return darkTextColor
	}
	return lightTextColor
}
