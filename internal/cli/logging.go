package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonbystrom/planner/internal/config"
)

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: want debug, info, warn or error", s)
	}
	return lvl, nil
}

// setupLogging points the default slog logger at the log file. The TUI
// owns the terminal so nothing is logged to stderr while it runs.
func (a *App) setupLogging() (func(), error) {
	lvl, err := parseLevel(a.LogLevel)
	if err != nil {
		return nil, err
	}

	path := a.LogFile
	if path == "" {
		path = config.LogPath()
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	slog.Info("planner started", "pid", os.Getpid(), "level", lvl.String())

	return func() {
		slog.Info("planner stopped")
		slog.SetDefault(prev)
		f.Close()
	}, nil
}
