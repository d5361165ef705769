package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar/terminal"
)

func TestBufferSetOutOfBounds(t *testing.T) {
	buf := NewRenderBuffer(3, 2)
	buf.SetFgOnly(-1, 0, 'x', RgbText, terminal.AttrNone)
	buf.SetFgOnly(3, 0, 'x', RgbText, terminal.AttrNone)
	buf.SetWithBg(0, 2, 'x', RgbText, RgbSun)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := buf.Get(x, y); c.Rune != 0 {
				t.Errorf("cell (%d,%d) written: %q", x, y, c.Rune)
			}
		}
	}
	if c := buf.Get(10, 10); c != (terminal.Cell{}) {
		t.Errorf("out of bounds Get returned %+v", c)
	}
}

func TestBufferAlphaBlendsOverBackground(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	src := RGB{R: 255, G: 255, B: 255}
	buf.Set(0, 0, 'o', src, src, BlendAlpha, 0.5, terminal.AttrNone)

	got := buf.Get(0, 0).Bg
	want := Blend(RgbBackground, src, 0.5)
	if got != want {
		t.Errorf("bg %+v, want %+v", got, want)
	}
}

func TestBufferWriteStringClips(t *testing.T) {
	buf := NewRenderBuffer(4, 1)
	next := buf.WriteString(2, 0, "Solar", RgbText, terminal.AttrBold)
	if next != 7 {
		t.Errorf("next column %d, want 7", next)
	}
	if buf.Get(2, 0).Rune != 'S' || buf.Get(3, 0).Rune != 'o' {
		t.Errorf("unexpected row %q%q", buf.Get(2, 0).Rune, buf.Get(3, 0).Rune)
	}
}

func TestBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetFgOnly(1, 1, 'x', RgbText, terminal.AttrNone)
	buf.Resize(3, 1)
	if buf.Width() != 3 || buf.Height() != 1 {
		t.Fatalf("size %dx%d, want 3x1", buf.Width(), buf.Height())
	}
	for x := 0; x < 3; x++ {
		if buf.Get(x, 0).Rune != 0 {
			t.Errorf("cell %d not cleared", x)
		}
	}
	buf.Resize(-1, 5)
	if buf.Width() != 0 {
		t.Errorf("negative width kept: %d", buf.Width())
	}
}

func TestFlushToTerminalDefaultsBackground(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	defer term.Fini()
	screen.SetSize(3, 1)

	buf := NewRenderBuffer(3, 1)
	buf.SetFgOnly(0, 0, 'o', RgbSun, terminal.AttrNone)
	buf.SetWithBg(1, 0, 'x', RgbText, RgbStatusBg)
	buf.FlushToTerminal(term)

	r, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if r != 'o' || terminal.RGBFromTcell(fg) != RgbSun || terminal.RGBFromTcell(bg) != RgbBackground {
		t.Errorf("cell 0: %q fg=%v bg=%v", r, fg, bg)
	}
	_, _, style, _ = screen.GetContent(1, 0)
	_, bg, _ = style.Decompose()
	if terminal.RGBFromTcell(bg) != RgbStatusBg {
		t.Errorf("cell 1 bg %v, want status background", bg)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	buf := NewRenderBuffer(8, 3)
	vp := Viewport{X: 0, Y: 0, Width: 8, Height: 3}
	DrawLine(buf, vp, 1, 1, 5, 1, '-', RgbText, 1)
	for x := 0; x < 8; x++ {
		want := rune(0)
		if x >= 1 && x <= 5 {
			want = '-'
		}
		if got := buf.Get(x, 1).Rune; got != want {
			t.Errorf("x=%d: %q, want %q", x, got, want)
		}
	}
}

func TestDrawLineClipsToViewport(t *testing.T) {
	buf := NewRenderBuffer(5, 5)
	vp := Viewport{X: 0, Y: 1, Width: 5, Height: 3}
	DrawLine(buf, vp, 2, 0, 2, 4, '|', RgbText, 1)
	if buf.Get(2, 0).Rune != 0 || buf.Get(2, 4).Rune != 0 {
		t.Error("line drawn outside viewport")
	}
	for y := 1; y <= 3; y++ {
		if buf.Get(2, y).Rune != '|' {
			t.Errorf("row %d missing", y)
		}
	}
}

func TestPaletteDistinct(t *testing.T) {
	colors := BodyColors(9)
	if len(colors) != 9 {
		t.Fatalf("got %d colors", len(colors))
	}
	seen := make(map[RGB]bool)
	for _, c := range colors {
		if seen[c] {
			t.Errorf("duplicate color %+v", c)
		}
		seen[c] = true
	}
	if Palette(0) != nil {
		t.Error("empty palette should be nil")
	}
}
