package terminal

import "github.com/gdamore/tcell/v2"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// TcellColor converts to a tcell true color
func (c RGB) TcellColor() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBFromTcell converts a tcell color back to RGB, non-RGB colors map to black
func RGBFromTcell(c tcell.Color) RGB {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGBBlack
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}
