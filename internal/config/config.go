package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atelier-tools/component-palette/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envRecords   = "COMPONENT_PALETTE_RECORDS"
	envIconRoot  = "COMPONENT_PALETTE_ICON_ROOT"
	envIconExt   = "COMPONENT_PALETTE_ICON_EXT"
	envWidth     = "COMPONENT_PALETTE_WIDTH"
	envHeight    = "COMPONENT_PALETTE_HEIGHT"
	envFooter    = "COMPONENT_PALETTE_FOOTER"
	envThreshold = "COMPONENT_PALETTE_THRESHOLD"
	envCopy      = "COMPONENT_PALETTE_COPY"
	envVerbose   = "COMPONENT_PALETTE_VERBOSE"
	envTrace     = "COMPONENT_PALETTE_TRACE"
	envLogFile   = "COMPONENT_PALETTE_LOG_FILE"
)

// Defaults mirror the asset layout the palette ships with.
const (
	DefaultRecordsPath = "assets/components.csv"
	DefaultIconRoot    = "assets/png"
	DefaultIconExt     = ".png"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("component-palette", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	records := fs.String("records", envOrDefault(env, envRecords, DefaultRecordsPath), "path to the component record CSV")
	iconRoot := fs.String("icon-root", envOrDefault(env, envIconRoot, DefaultIconRoot), "root directory of the icon store")
	iconExt := fs.String("icon-ext", envOrDefault(env, envIconExt, DefaultIconExt), "image extension used for icon lookups")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	threshold := fs.Int("threshold", envOrInt(env, envThreshold, app.DefaultDragThreshold), "pointer displacement in cells before a press becomes a drag")
	copyFlag := fs.Bool("copy", envOrBool(env, envCopy, false), "export drag payloads to the system clipboard instead of stdout")
	list := fs.Bool("list", false, "print the catalog as a table and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show exported payload confirmations")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			RecordsPath:     *records,
			IconRoot:        *iconRoot,
			IconExt:         *iconExt,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			DragThreshold:   *threshold,
			CopyToClipboard: *copyFlag,
			ListOnly:        *list,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"records":   *records,
			"iconRoot":  *iconRoot,
			"iconExt":   *iconExt,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"threshold": strconv.Itoa(*threshold),
			"copy":      strconv.FormatBool(*copyFlag),
			"list":      strconv.FormatBool(*list),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.DragThreshold < 1 {
		return fmt.Errorf("threshold must be >= 1 (got %d)", cfg.App.DragThreshold)
	}
	if strings.TrimSpace(cfg.App.RecordsPath) == "" {
		return fmt.Errorf("records path must not be empty")
	}
	return nil
}
