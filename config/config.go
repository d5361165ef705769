// Package config holds command line options and the body catalog.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/solar/constants"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Mode selects the frame sinks of a run
type Mode int

const (
	// ModeInteractive animates in the terminal until the user quits
	ModeInteractive Mode = iota
	// ModeHeadless advances one revolution without display
	ModeHeadless
	// ModeExport renders one revolution to video or image frames
	ModeExport
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeHeadless:
		return "headless"
	case ModeExport:
		return "export"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config is the parsed command line
type Config struct {
	ShowAxis  bool
	SaveMP4   bool
	Verbose   bool
	Headless  bool
	Sound     bool
	Precision int
	FPS       int
	DPI       int

	Output      string
	FramesDir   string
	CatalogPath string
	MetricsAddr string
	LogFile     string
	LogLevel    string
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		Precision: constants.DefaultPrecision,
		FPS:       constants.DefaultFPS,
		DPI:       constants.DefaultExportDPI,
		Output:    constants.DefaultOutputFile,
		LogLevel:  "info",
	}
}

// RegisterFlags binds c to fs; short flags alias the long ones
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	boolFlag := func(p *bool, long, short, usage string) {
		fs.BoolVar(p, long, *p, usage)
		fs.BoolVar(p, short, *p, usage+" (shorthand)")
	}
	intFlag := func(p *int, long, short, usage string) {
		fs.IntVar(p, long, *p, usage)
		fs.IntVar(p, short, *p, usage+" (shorthand)")
	}

	boolFlag(&c.ShowAxis, "show-axis", "A", "draw axis box and labels")
	boolFlag(&c.SaveMP4, "save-mp4", "S", "export one revolution to video instead of interactive display")
	boolFlag(&c.Verbose, "verbose", "V", "print per-frame body positions")
	intFlag(&c.Precision, "precision", "p", "orbit samples and frames per revolution")
	intFlag(&c.FPS, "fps", "f", "frames per second")

	fs.BoolVar(&c.Headless, "headless", c.Headless, "run one revolution without display")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "chime on each completed revolution")
	fs.IntVar(&c.DPI, "dpi", c.DPI, "export resolution")
	fs.StringVar(&c.Output, "output", c.Output, "video file written by --save-mp4")
	fs.StringVar(&c.FramesDir, "frames-dir", c.FramesDir, "write PNG frames to this directory instead of encoding video")
	fs.StringVar(&c.CatalogPath, "catalog", c.CatalogPath, "YAML body catalog (default: built-in)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "JSON log destination")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Parse parses args (without the program name) into a validated Config
// Usage and errors are written to errOut; flag.ErrHelp is returned for -h
func Parse(name string, args []string, errOut io.Writer) (*Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	c.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return nil, err
	}
	if err := c.Validate(); err != nil {
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the animation cannot run with
func (c *Config) Validate() error {
	if c.Precision < 1 {
		return fmt.Errorf("%w: precision must be >= 1, got %d", ErrInvalidConfig, c.Precision)
	}
	if c.FPS < 1 {
		return fmt.Errorf("%w: fps must be >= 1, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.DPI < 1 {
		return fmt.Errorf("%w: dpi must be >= 1, got %d", ErrInvalidConfig, c.DPI)
	}
	if c.Headless && c.SaveMP4 {
		return fmt.Errorf("%w: --headless and --save-mp4 are exclusive", ErrInvalidConfig)
	}
	if c.FramesDir != "" && !c.SaveMP4 {
		return fmt.Errorf("%w: --frames-dir requires --save-mp4", ErrInvalidConfig)
	}
	if c.SaveMP4 && c.Output == "" && c.FramesDir == "" {
		return fmt.Errorf("%w: --output must not be empty", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Mode derives the run mode from the flags
func (c *Config) Mode() Mode {
	switch {
	case c.SaveMP4:
		return ModeExport
	case c.Headless:
		return ModeHeadless
	default:
		return ModeInteractive
	}
}

// Catalog loads the configured catalog or returns the built-in one
func (c *Config) Catalog() (*Catalog, error) {
	if c.CatalogPath == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(c.CatalogPath)
}
