package export

import (
	"bytes"

	"github.com/lixenwraith/solar/engine"
)

// Sink renders every stepped frame and hands the PNG to a FrameWriter
type Sink struct {
	renderer *FrameRenderer
	writer   FrameWriter
	buf      bytes.Buffer
	written  int
}

// NewSink couples a renderer with a writer
func NewSink(r *FrameRenderer, w FrameWriter) *Sink {
	return &Sink{renderer: r, writer: w}
}

// Frame implements engine.Sink
func (s *Sink) Frame(st engine.FrameState) error {
	if st.Redraw {
		return nil
	}
	s.buf.Reset()
	if err := s.renderer.Encode(st.Frame, &s.buf); err != nil {
		return err
	}
	if err := s.writer.WriteFrame(s.written, s.buf.Bytes()); err != nil {
		return err
	}
	s.written++
	return nil
}

// Written returns the number of frames handed to the writer
func (s *Sink) Written() int {
	return s.written
}

// Close closes the writer
func (s *Sink) Close() error {
	return s.writer.Close()
}
