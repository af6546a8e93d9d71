package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/simonbystrom/planner/internal/team"
)

// Colors holds color values for every UI style.
// Values can be xterm-256 codes (0-255) or hex colors (#rrggbb).
type Colors struct {
	Title        string `toml:"title"`
	Header       string `toml:"header"`
	SelectedBG   string `toml:"selected_bg"`
	SelectedFG   string `toml:"selected_fg"`
	Low          string `toml:"low"`
	Medium       string `toml:"medium"`
	High         string `toml:"high"`
	NotStarted   string `toml:"not_started"`
	InProgress   string `toml:"in_progress"`
	Completed    string `toml:"completed"`
	Blocked      string `toml:"blocked"`
	Notification string `toml:"notification"`
	Success      string `toml:"success"`
	Help         string `toml:"help"`
	Border       string `toml:"border"`
	Separator    string `toml:"separator"`
	WizardTitle  string `toml:"wizard_title"`
	WizardActive string `toml:"wizard_active"`
	WizardDim    string `toml:"wizard_dim"`
	Error        string `toml:"error"`
	Logo         string `toml:"logo"`
}

// Layout holds pane sizing percentages.
type Layout struct {
	MenuWidth     int `toml:"menu_width"`
	TimelineWidth int `toml:"timeline_width"`
}

// Project holds settings shown in the report header.
type Project struct {
	Manager string `toml:"manager"`
}

// Export controls where generated report files are written.
type Export struct {
	Dir        string `toml:"dir"`
	ReportFile string `toml:"report_file"`
	ChartFile  string `toml:"chart_file"`
}

// Team configures the member directory. Roster, when set, names a YAML
// roster file that takes precedence over Members.
type Team struct {
	Roster  string        `toml:"roster"`
	Members []team.Member `toml:"members"`
}

// Config is the top-level configuration.
type Config struct {
	Colors  Colors  `toml:"colors"`
	Layout  Layout  `toml:"layout"`
	Project Project `toml:"project"`
	Export  Export  `toml:"export"`
	Team    Team    `toml:"team"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Colors: Colors{
			Title:        "#cba6f7", // Mauve
			Header:       "#89b4fa", // Blue
			SelectedBG:   "#313244", // Surface 0
			SelectedFG:   "#cdd6f4", // Text
			Low:          "#a6e3a1", // Green
			Medium:       "#f9e2af", // Yellow
			High:         "#f38ba8", // Red
			NotStarted:   "#7f849c", // Overlay 1
			InProgress:   "#89b4fa", // Blue
			Completed:    "#a6e3a1", // Green
			Blocked:      "#fab387", // Peach
			Notification: "#a6adc8", // Subtext 0
			Success:      "#94e2d5", // Teal
			Help:         "#7f849c", // Overlay 1
			Border:       "#585b70", // Surface 2
			Separator:    "#585b70", // Surface 2
			WizardTitle:  "#cba6f7", // Mauve
			WizardActive: "#cba6f7", // Mauve
			WizardDim:    "#7f849c", // Overlay 1
			Error:        "#f38ba8", // Red
			Logo:         "#cba6f7", // Mauve
		},
		Layout: Layout{
			MenuWidth:     40,
			TimelineWidth: 60,
		},
		Project: Project{
			Manager: "Faisal",
		},
		Export: Export{
			Dir:        ".",
			ReportFile: "project_report.pdf",
			ChartFile:  "gantt_chart.png",
		},
		Team: Team{
			Members: team.DefaultMembers(),
		},
	}
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "planner", "planner.conf")
}

// LogPath returns the default log file path, respecting XDG_STATE_HOME.
func LogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "planner", "planner.log")
}

// Load reads the config file at Path().
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config file at path and returns a Config. Omitted
// fields keep their default values. If the file does not exist, defaults
// are returned with no error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	// An explicit members list replaces the default roster entirely.
	var probe struct {
		Team struct {
			Members []team.Member `toml:"members"`
		} `toml:"team"`
	}
	if _, err := toml.Decode(string(data), &probe); err != nil {
		return cfg, err
	}
	if len(probe.Team.Members) > 0 {
		cfg.Team.Members = nil
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const defaultFileContent = `# Planner configuration
# Uncomment and modify values to customize. All values are optional.
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# Defaults use the Catppuccin Mocha palette.

[colors]
# title         = "#cba6f7"  # Mauve
# header        = "#89b4fa"  # Blue
# selected_bg   = "#313244"  # Surface 0
# selected_fg   = "#cdd6f4"  # Text
# low           = "#a6e3a1"  # Green
# medium        = "#f9e2af"  # Yellow
# high          = "#f38ba8"  # Red
# not_started   = "#7f849c"  # Overlay 1
# in_progress   = "#89b4fa"  # Blue
# completed     = "#a6e3a1"  # Green
# blocked       = "#fab387"  # Peach
# notification  = "#a6adc8"  # Subtext 0
# success       = "#94e2d5"  # Teal
# help          = "#7f849c"  # Overlay 1
# border        = "#585b70"  # Surface 2
# separator     = "#585b70"  # Surface 2
# wizard_title  = "#cba6f7"  # Mauve
# wizard_active = "#cba6f7"  # Mauve
# wizard_dim    = "#7f849c"  # Overlay 1
# error         = "#f38ba8"  # Red
# logo          = "#cba6f7"  # Mauve

[layout]
# menu_width     = 40   # percentage of terminal width for the menu panel
# timeline_width = 60   # percentage of width used for Gantt bars

[project]
# manager = "Faisal"

[export]
# dir         = "."
# report_file = "project_report.pdf"
# chart_file  = "gantt_chart.png"

[team]
# roster = "~/.config/planner/team.yaml"   # YAML roster, overrides members below
#
# [[team.members]]
# name = "Faisal"
# role = "Project Manager"
#
# [[team.members]]
# name = "Hamza"
# role = "Developer"
`

// WriteDefault writes the default config file with all values commented out.
// It no-ops if the file already exists. Parent directories are created as needed.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // file already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
