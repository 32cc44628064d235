// Package logs builds the process-wide slog.Logger.
package logs

import (
	"io"
	"log/slog"
	"os"

	"mescontacts/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New writes to stdout. env.debug forces the debug level regardless of
// env.log.level.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	env := cfg.Env

	level := slog.LevelDebug
	if !env.Debug {
		var err error
		if level, err = parseLogLevel(env.Log.Level); err != nil {
			return nil, err
		}
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: env.Debug}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var base []slog.Attr
	if env.ServiceName != "" {
		base = append(base, slog.String("service", env.ServiceName))
	}
	if env.Env != "" {
		base = append(base, slog.String("env", env.Env))
	}

	return slog.New(handler.WithAttrs(base)), nil
}

// parseLogLevel accepts slog level names in any case. Empty means info.
func parseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", name)
	}

	return level, nil
}
