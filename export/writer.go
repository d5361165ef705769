package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrFFmpegNotFound is returned when the encoder binary is not on PATH
var ErrFFmpegNotFound = errors.New("ffmpeg not found on PATH")

// FrameWriter receives encoded PNG frames in order
type FrameWriter interface {
	WriteFrame(frame int, png []byte) error
	Close() error
}

// FFmpegWriter pipes PNG frames into an ffmpeg process producing an MP4
type FFmpegWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	output string
	closed bool
}

// ffmpegArgs builds the encoder command line reading PNGs from stdin
func ffmpegArgs(output string, fps int) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "image2pipe",
		"-framerate", strconv.Itoa(fps),
		"-c:v", "png",
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		// libx264 needs even dimensions
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		output,
	}
}

// NewFFmpegWriter starts binary (ffmpeg when empty) encoding to output at fps
func NewFFmpegWriter(ctx context.Context, binary, output string, fps int) (*FFmpegWriter, error) {
	if binary == "" {
		binary = "ffmpeg"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFFmpegNotFound, binary)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	w := &FFmpegWriter{output: output}
	w.cmd = exec.CommandContext(ctx, path, ffmpegArgs(output, fps)...)
	w.cmd.Stderr = &w.stderr
	w.stdin, err = w.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin: %w", err)
	}
	if err := w.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return w, nil
}

// WriteFrame implements FrameWriter
func (w *FFmpegWriter) WriteFrame(frame int, png []byte) error {
	if _, err := w.stdin.Write(png); err != nil {
		return fmt.Errorf("pipe frame %d to ffmpeg: %w%s", frame, err, w.detail())
	}
	return nil
}

// Close finishes the stream and waits for ffmpeg to exit
func (w *FFmpegWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	closeErr := w.stdin.Close()
	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w%s", err, w.detail())
	}
	if closeErr != nil {
		return fmt.Errorf("close ffmpeg stdin: %w", closeErr)
	}
	return nil
}

// Output returns the MP4 path
func (w *FFmpegWriter) Output() string {
	return w.output
}

// detail formats captured ffmpeg stderr for error messages
func (w *FFmpegWriter) detail() string {
	msg := strings.TrimSpace(w.stderr.String())
	if msg == "" {
		return ""
	}
	return ": " + msg
}

// PNGSequence writes frame_NNNNNN.png files into a directory
type PNGSequence struct {
	dir string
}

// NewPNGSequence creates dir and removes PNG frames left by a previous run
func NewPNGSequence(dir string) (*PNGSequence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frames directory: %w", err)
	}
	old, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		return nil, err
	}
	for _, f := range old {
		if err := os.Remove(f); err != nil {
			return nil, fmt.Errorf("remove old frame: %w", err)
		}
	}
	return &PNGSequence{dir: dir}, nil
}

// Path returns the file name used for frame
func (s *PNGSequence) Path(frame int) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame_%06d.png", frame))
}

// WriteFrame implements FrameWriter
func (s *PNGSequence) WriteFrame(frame int, png []byte) error {
	if err := os.WriteFile(s.Path(frame), png, 0o644); err != nil {
		return fmt.Errorf("write frame %d: %w", frame, err)
	}
	return nil
}

// Close implements FrameWriter
func (s *PNGSequence) Close() error {
	return nil
}
