package render

import (
	"github.com/lixenwraith/solar/terminal"
	"github.com/lixenwraith/solar/vmath"
)

// inViewport reports whether a cell lies inside vp
func inViewport(vp Viewport, x, y int) bool {
	return x >= vp.X && x < vp.X+vp.Width && y >= vp.Y && y < vp.Y+vp.Height
}

// DrawLine rasterizes a cell line with Bresenham, clipped to vp
// Cells keep their background; fg is alpha-blended over the scene background
func DrawLine(buf *RenderBuffer, vp Viewport, x0, y0, x1, y1 int, r rune, fg RGB, alpha float64) {
	color := Faint(fg, alpha)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if inViewport(vp, x0, y0) {
			buf.SetFgOnly(x0, y0, r, color, terminal.AttrNone)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawSegment projects a world segment and rasterizes it
func DrawSegment(buf *RenderBuffer, cam Camera, vp Viewport, a, b vmath.Vec3F, r rune, fg RGB, alpha float64) {
	x0, y0, _, _ := cam.ToScreen(a, vp)
	x1, y1, _, _ := cam.ToScreen(b, vp)
	DrawLine(buf, vp, x0, y0, x1, y1, r, fg, alpha)
}

// DrawPath rasterizes consecutive points as connected segments, closing the loop when closed is set
func DrawPath(buf *RenderBuffer, cam Camera, vp Viewport, points []vmath.Vec3F, closed bool, r rune, fg RGB, alpha float64) {
	switch len(points) {
	case 0:
		return
	case 1:
		DrawSegment(buf, cam, vp, points[0], points[0], r, fg, alpha)
		return
	}
	for i := 1; i < len(points); i++ {
		DrawSegment(buf, cam, vp, points[i-1], points[i], r, fg, alpha)
	}
	if closed {
		DrawSegment(buf, cam, vp, points[len(points)-1], points[0], r, fg, alpha)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
