package main

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/solar/config"
	"github.com/lixenwraith/solar/engine"
	"github.com/lixenwraith/solar/export"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
)

// verboseSink prints the body positions of every stepped frame
func verboseSink(u *solar.Universe, w io.Writer) engine.Sink {
	return engine.SinkFunc(func(st engine.FrameState) error {
		if st.Redraw {
			return nil
		}
		return u.WriteFrame(w, st.Frame)
	})
}

// newHeadlessSession advances one paced revolution without display
func newHeadlessSession(cfg *config.Config, u *solar.Universe, stdout io.Writer) (*session, error) {
	d := engine.NewDriver(u, cfg.FPS, false)
	if cfg.Verbose {
		d.AddSink(verboseSink(u, stdout))
	}
	return &session{
		driver: d,
		close:  func() error { return nil },
	}, nil
}

// newExportSession renders one revolution as fast as the encoder accepts frames
// Frames go to ffmpeg, or to a PNG sequence when a frames directory is set
func newExportSession(ctx context.Context, cfg *config.Config, u *solar.Universe, log *zap.Logger, stdout io.Writer) (*session, error) {
	var (
		writer export.FrameWriter
		target string
	)
	if cfg.FramesDir != "" {
		seq, err := export.NewPNGSequence(cfg.FramesDir)
		if err != nil {
			return nil, err
		}
		writer, target = seq, cfg.FramesDir
	} else {
		ff, err := export.NewFFmpegWriter(ctx, "", cfg.Output, cfg.FPS)
		if err != nil {
			return nil, err
		}
		writer, target = ff, ff.Output()
	}

	renderer := export.NewFrameRenderer(u, render.NewCamera(u.Radius), cfg.ShowAxis, cfg.DPI, cfg.Precision)
	sink := export.NewSink(renderer, writer)

	d := engine.NewDriver(u, 0, false, sink)
	if cfg.Verbose {
		d.AddSink(verboseSink(u, stdout))
	}

	w, h := renderer.Size()
	log.Info("export started",
		zap.String("target", target),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("fps", cfg.FPS),
	)
	start := time.Now()

	return &session{
		driver: d,
		close: func() error {
			err := sink.Close()
			fields := []zap.Field{
				zap.String("target", target),
				zap.Int("frames", sink.Written()),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				log.Error("export failed", append(fields, zap.Error(err))...)
				return err
			}
			log.Info("export finished", fields...)
			return nil
		},
	}, nil
}
