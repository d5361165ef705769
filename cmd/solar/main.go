package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/solar/audio"
	"github.com/lixenwraith/solar/config"
	"github.com/lixenwraith/solar/engine"
	"github.com/lixenwraith/solar/logging"
	"github.com/lixenwraith/solar/metrics"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/terminal"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	defer crashReport()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// crashReport restores the terminal and exits when a goroutine panics
func crashReport() {
	if r := recover(); r != nil {
		terminal.EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSOLAR CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(exitError)
	}
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("solar", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	mode := cfg.Mode()
	log, err := logging.New(cfg.LogLevel, logging.Outputs(mode == config.ModeInteractive, cfg.LogFile)...)
	if err != nil {
		fmt.Fprintf(stderr, "solar: %v\n", err)
		return exitError
	}
	defer log.Sync()

	if err := execute(ctx, cfg, log, stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run failed", zap.String("mode", mode.String()), zap.Error(err))
		fmt.Fprintf(stderr, "solar: %v\n", err)
		if errors.Is(err, config.ErrInvalidConfig) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

// session is one configured run: the driver, an optional loop running beside it and the teardown
type session struct {
	driver *engine.Driver
	loop   func(context.Context) error
	close  func() error
}

// execute builds the universe and runs the selected mode
func execute(ctx context.Context, cfg *config.Config, log *zap.Logger, stdout io.Writer) (err error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	u, err := solar.New(cat, cfg.Precision)
	if err != nil {
		return err
	}
	mode := cfg.Mode()
	log.Info("universe ready",
		zap.Int("bodies", len(u.Bodies)),
		zap.Int("frames", u.Frames),
		zap.String("mode", mode.String()),
	)

	// Encoder processes outlive the run context so they can flush after the last frame
	root := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var s *session
	switch mode {
	case config.ModeExport:
		s, err = newExportSession(root, cfg, u, log, stdout)
	case config.ModeHeadless:
		s, err = newHeadlessSession(cfg, u, stdout)
	default:
		s, err = newInteractiveSession(cancel, cfg, u, stdout)
	}
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	driver := s.driver

	if cfg.Sound {
		chime := audio.NewChime()
		if cerr := chime.Initialize(); cerr != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(cerr))
		} else {
			defer chime.Cleanup()
			driver.AddSink(chime)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		collector, merr := metrics.NewCollector(prometheus.NewRegistry())
		if merr != nil {
			return fmt.Errorf("metrics: %w", merr)
		}
		collector.SetBodies(len(u.Bodies))
		driver.SetObserver(collector)
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.MetricsAddr, collector, log)
		})
	}

	if s.loop != nil {
		g.Go(func() error {
			return s.loop(gctx)
		})
	}

	g.Go(func() error {
		defer crashReport()
		// Batch modes stop the metrics server with the last frame
		defer cancel()
		return driver.Run(gctx)
	})

	return g.Wait()
}
