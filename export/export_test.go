package export

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/solar/config"
	"github.com/lixenwraith/solar/engine"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
)

const testDPI = 20

func newRenderer(t *testing.T, showAxis bool) (*FrameRenderer, *solar.Universe) {
	t.Helper()
	u, err := solar.New(config.DefaultCatalog(), 16)
	require.NoError(t, err)
	u.Step(3)
	return NewFrameRenderer(u, render.NewCamera(u.Radius), showAxis, testDPI, 16), u
}

type memWriter struct {
	frames [][]byte
	closed bool
	fail   error
}

func (m *memWriter) WriteFrame(frame int, data []byte) error {
	if m.fail != nil {
		return m.fail
	}
	m.frames = append(m.frames, append([]byte(nil), data...))
	return nil
}

func (m *memWriter) Close() error {
	m.closed = true
	return nil
}

func TestEncodeProducesPNG(t *testing.T) {
	for _, showAxis := range []bool{false, true} {
		r, _ := newRenderer(t, showAxis)

		var buf bytes.Buffer
		require.NoError(t, r.Encode(3, &buf))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		w, h := r.Size()
		assert.Equal(t, 320, w)
		assert.Equal(t, 180, h)
		assert.Equal(t, w, img.Bounds().Dx())
		assert.Equal(t, h, img.Bounds().Dy())
	}
}

func TestPlotTitleAndRange(t *testing.T) {
	r, u := newRenderer(t, false)
	p, err := r.Plot(42)
	require.NoError(t, err)

	assert.Equal(t, "Solar, t=42", p.Title.Text)
	assert.InDelta(t, -u.Radius, p.Y.Min, 1e-9)
	assert.InDelta(t, u.Radius, p.Y.Max, 1e-9)
	assert.InDelta(t, u.Radius*16/9, p.X.Max, 1e-9)
}

func TestDefaultDPI(t *testing.T) {
	u, err := solar.New(config.DefaultCatalog(), 8)
	require.NoError(t, err)
	r := NewFrameRenderer(u, render.NewCamera(u.Radius), false, 0, 8)
	w, h := r.Size()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
}

func TestSinkSkipsRedraw(t *testing.T) {
	r, _ := newRenderer(t, false)
	mw := &memWriter{}
	s := NewSink(r, mw)

	require.NoError(t, s.Frame(engine.FrameState{Frame: 3}))
	require.NoError(t, s.Frame(engine.FrameState{Frame: 3, Redraw: true}))
	assert.Equal(t, 1, s.Written())
	require.Len(t, mw.frames, 1)
	_, err := png.Decode(bytes.NewReader(mw.frames[0]))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.True(t, mw.closed)
}

func TestSinkPropagatesWriterError(t *testing.T) {
	r, _ := newRenderer(t, false)
	boom := errors.New("pipe closed")
	s := NewSink(r, &memWriter{fail: boom})
	assert.ErrorIs(t, s.Frame(engine.FrameState{}), boom)
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "frame_000099.png")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	keep := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0o644))

	seq, err := NewPNGSequence(dir)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)

	require.NoError(t, seq.WriteFrame(0, []byte("a")))
	require.NoError(t, seq.WriteFrame(1, []byte("b")))
	require.NoError(t, seq.Close())

	assert.Equal(t, filepath.Join(dir, "frame_000001.png"), seq.Path(1))
	data, err := os.ReadFile(seq.Path(1))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestFFmpegNotFound(t *testing.T) {
	_, err := NewFFmpegWriter(context.Background(), "solar-no-such-encoder", filepath.Join(t.TempDir(), "x.mp4"), 24)
	assert.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestFFmpegArgs(t *testing.T) {
	args := ffmpegArgs("out/solar.mp4", 24)
	assert.Equal(t, "out/solar.mp4", args[len(args)-1])
	assert.Contains(t, args, "image2pipe")
	assert.Contains(t, args, "libx264")
	assert.Contains(t, args, "yuv420p")
	assert.Contains(t, args, "24")
}

func TestFFmpegEncodes(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	r, u := newRenderer(t, false)
	out := filepath.Join(t.TempDir(), "solar.mp4")

	w, err := NewFFmpegWriter(context.Background(), "", out, 8)
	require.NoError(t, err)
	s := NewSink(r, w)
	for frame := 0; frame < 4; frame++ {
		u.Step(frame)
		require.NoError(t, s.Frame(engine.FrameState{Frame: frame}))
	}
	require.NoError(t, s.Close())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
