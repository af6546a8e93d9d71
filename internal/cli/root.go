// Package cli wires configuration, logging and the session into the
// planner command tree.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/planner/internal/config"
	"github.com/simonbystrom/planner/internal/session"
	"github.com/simonbystrom/planner/internal/team"
	"github.com/simonbystrom/planner/internal/ui"
)

// App holds the persistent flag values shared by every command.
type App struct {
	ConfigPath string
	TeamPath   string
	ExportDir  string
	LogFile    string
	LogLevel   string

	fs afero.Fs
}

func NewRootCmd() *cobra.Command {
	app := &App{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Terminal project planner with Gantt timeline and PDF reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive planner
  planner

  # Use a custom team roster and write reports to ~/reports
  planner --team ~/team.yaml --export-dir ~/reports

  # Write a commented config file
  planner config init
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "config file (default "+config.Path()+")")
	f.StringVar(&app.TeamPath, "team", "", "YAML team roster file (overrides [team] in config)")
	f.StringVar(&app.ExportDir, "export-dir", "", "directory for generated reports (overrides [export] dir)")
	f.StringVar(&app.LogFile, "log-file", "", "log file (default "+config.LogPath()+")")
	f.StringVar(&app.LogLevel, "log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newTeamCmd(app))
	return cmd
}

func (a *App) configPath() string {
	if a.ConfigPath != "" {
		return expandHome(a.ConfigPath)
	}
	return config.Path()
}

func (a *App) loadConfig() (config.Config, error) {
	return config.LoadFile(a.configPath())
}

func (a *App) directory(cfg config.Config) (*team.Directory, error) {
	path := a.TeamPath
	if path == "" {
		path = cfg.Team.Roster
	}
	return team.Resolve(a.fs, expandHome(path), cfg.Team.Members)
}

func (a *App) newSession(cfg config.Config, dir *team.Directory) *session.Session {
	exportDir := a.ExportDir
	if exportDir == "" {
		exportDir = cfg.Export.Dir
	}
	return session.New(dir,
		session.WithFS(a.fs),
		session.WithExportDir(expandHome(exportDir)),
		session.WithReportFile(cfg.Export.ReportFile),
		session.WithChartFile(cfg.Export.ChartFile),
		session.WithProjectManager(cfg.Project.Manager),
	)
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := app.setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	dir, err := app.directory(cfg)
	if err != nil {
		return err
	}
	sess := app.newSession(cfg, dir)

	ctx := cmd.Context()
	p := tea.NewProgram(ui.NewApp(ctx, cfg, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
