package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/domino"
	"github.com/aretw0/domino/internal/config"
	"github.com/aretw0/domino/internal/logging"
	"github.com/aretw0/domino/internal/presentation/tui"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/muesli/termenv"
)

// Options carries everything a command needs besides its own flags.
type Options struct {
	Config config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// createLogger configures the application logger from the resolved config.
// It writes to Stderr so stdout stays reserved for the tile.
func createLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		format = logging.FormatText
	}
	return logging.NewWithWriter(w, level, format)
}

// tileOptions translates config into tile options.
func tileOptions(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) []domino.Option {
	opts := []domino.Option{
		domino.WithLogger(logger),
		domino.WithLifecycleHooks(hooks),
	}
	if cfg.Seed != nil {
		opts = append(opts, domino.WithSeed(*cfg.Seed))
	}
	return opts
}

// colorProfile resolves the color mode against the writer.
func colorProfile(cfg config.Config, w io.Writer) termenv.Profile {
	switch strings.ToLower(cfg.Color) {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.TrueColor
	}
	f, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	return tui.DetectProfile(f)
}
