// Package export renders frames offscreen with gonum/plot and encodes them to MP4 or a PNG sequence.
package export

import (
	"fmt"
	"image/color"
	"io"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/vmath"
)

// Figure colors
var (
	colorSun      = color.NRGBA{R: 255, G: 165, A: 255}
	colorMeridian = color.NRGBA{R: 128, G: 128, B: 128, A: 51}
	colorFrame    = color.NRGBA{R: 64, G: 64, B: 64, A: 128}
	colorAxisX    = color.NRGBA{R: 255, A: 255}
	colorAxisY    = color.NRGBA{G: 128, A: 255}
	colorAxisZ    = color.NRGBA{B: 255, A: 255}
)

const orbitAlpha = 0.2

// FrameRenderer draws one frame of the universe as a 16:9 figure
type FrameRenderer struct {
	universe  *solar.Universe
	camera    render.Camera
	showAxis  bool
	dpi       int
	palette   []colorful.Color
	meridians [][]vmath.Vec3F
}

// NewFrameRenderer prepares a renderer; precision samples the meridians
func NewFrameRenderer(u *solar.Universe, cam render.Camera, showAxis bool, dpi, precision int) *FrameRenderer {
	if dpi <= 0 {
		dpi = constants.DefaultExportDPI
	}
	meridians := u.Meridians(precision)
	paths := make([][]vmath.Vec3F, len(meridians))
	for i, m := range meridians {
		paths[i] = m.Points()
	}
	return &FrameRenderer{
		universe:  u,
		camera:    cam,
		showAxis:  showAxis,
		dpi:       dpi,
		palette:   render.Palette(len(u.Bodies)),
		meridians: paths,
	}
}

// Size returns the raster size in pixels
func (r *FrameRenderer) Size() (width, height int) {
	return int(constants.ExportWidthInches * float64(r.dpi)), int(constants.ExportHeightInches * float64(r.dpi))
}

// project maps world points onto the camera plane
func (r *FrameRenderer) project(points []vmath.Vec3F) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X, xys[i].Y, _ = r.camera.Project(p)
	}
	return xys
}

// line adds a polyline to p
func (r *FrameRenderer) line(p *plot.Plot, points []vmath.Vec3F, c color.Color, width vg.Length) error {
	if len(points) == 0 {
		return nil
	}
	l, err := plotter.NewLine(r.project(points))
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	p.Add(l)
	return nil
}

// marker creates a scatter of a single point
func (r *FrameRenderer) marker(pos vmath.Vec3F, c color.Color, radius vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(r.project([]vmath.Vec3F{pos}))
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// Plot builds the figure for frame from the current body positions
func (r *FrameRenderer) Plot(frame int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf(constants.TitleFormat, frame)
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Legend.Top = true
	p.Legend.Left = false

	// Equal scale on both axes for a 16:9 figure
	ext := r.camera.Extent
	if r.camera.Zoom > 0 {
		ext /= r.camera.Zoom
	}
	aspect := constants.ExportWidthInches / constants.ExportHeightInches
	p.X.Min, p.X.Max = -ext*aspect, ext*aspect
	p.Y.Min, p.Y.Max = -ext, ext

	if r.showAxis {
		p.X.Label.Text = "screen x"
		p.Y.Label.Text = "screen y"
		if err := r.axisBox(p); err != nil {
			return nil, err
		}
	} else {
		p.HideAxes()
	}

	for _, m := range r.meridians {
		if err := r.line(p, m, colorMeridian, vg.Points(0.5)); err != nil {
			return nil, fmt.Errorf("meridian: %w", err)
		}
	}

	for i, b := range r.universe.Bodies {
		if err := r.line(p, b.Orbit.Points(), toNRGBA(r.palette[i], orbitAlpha), vg.Points(1)); err != nil {
			return nil, fmt.Errorf("orbit of %s: %w", b.Name, err)
		}
	}

	center := r.universe.Center
	axes := [3]struct {
		dir vmath.Vec3F
		c   color.Color
	}{
		{vmath.Vec3F{X: constants.AxisMundiRadius}, colorAxisX},
		{vmath.Vec3F{Y: constants.AxisMundiRadius}, colorAxisY},
		{vmath.Vec3F{Z: constants.AxisMundiRadius}, colorAxisZ},
	}
	for _, ax := range axes {
		seg := []vmath.Vec3F{vmath.V3FSub(center, ax.dir), vmath.V3FAdd(center, ax.dir)}
		if err := r.line(p, seg, ax.c, vg.Points(1)); err != nil {
			return nil, fmt.Errorf("axis mundi: %w", err)
		}
	}

	sun, err := r.marker(center, colorSun, vg.Points(6))
	if err != nil {
		return nil, fmt.Errorf("sun: %w", err)
	}
	p.Add(sun)

	// Far bodies first, legend stays in catalog order
	markers := make([]*plotter.Scatter, len(r.universe.Bodies))
	order := make([]int, len(r.universe.Bodies))
	depth := make([]float64, len(r.universe.Bodies))
	for i, b := range r.universe.Bodies {
		m, err := r.marker(b.Position, r.palette[i], vg.Points(4))
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", b.Name, err)
		}
		markers[i] = m
		order[i] = i
		_, _, depth[i] = r.camera.Project(b.Position)
		p.Legend.Add(b.Label(), m)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case depth[a] < depth[b]:
			return -1
		case depth[a] > depth[b]:
			return 1
		}
		return 0
	})
	for _, i := range order {
		p.Add(markers[i])
	}

	return p, nil
}

// axisBox adds the bounding cube and X/Y/Z labels
func (r *FrameRenderer) axisBox(p *plot.Plot) error {
	half := r.universe.Radius
	center := r.universe.Center
	corner := func(i int) vmath.Vec3F {
		c := vmath.Vec3F{X: -half, Y: -half, Z: -half}
		if i&1 != 0 {
			c.X = half
		}
		if i&2 != 0 {
			c.Y = half
		}
		if i&4 != 0 {
			c.Z = half
		}
		return vmath.V3FAdd(center, c)
	}
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				if err := r.line(p, []vmath.Vec3F{corner(i), corner(i | bit)}, colorFrame, vg.Points(0.5)); err != nil {
					return err
				}
			}
		}
	}

	ends := []vmath.Vec3F{
		vmath.V3FAdd(center, vmath.Vec3F{X: half}),
		vmath.V3FAdd(center, vmath.Vec3F{Y: half}),
		vmath.V3FAdd(center, vmath.Vec3F{Z: half}),
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    r.project(ends),
		Labels: []string{"X", "Y", "Z"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// Encode draws frame into a PNG written to w
func (r *FrameRenderer) Encode(frame int, w io.Writer) error {
	p, err := r.Plot(frame)
	if err != nil {
		return fmt.Errorf("plot frame %d: %w", frame, err)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(constants.ExportWidthInches)*vg.Inch, vg.Length(constants.ExportHeightInches)*vg.Inch),
		vgimg.UseDPI(r.dpi),
	)
	p.Draw(draw.New(c))

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("encode frame %d: %w", frame, err)
	}
	return nil
}

// toNRGBA converts a palette color with the given opacity
func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
