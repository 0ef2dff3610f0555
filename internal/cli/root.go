// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aidanlsb/when/internal/config"
	"github.com/aidanlsb/when/internal/dates"
	"github.com/aidanlsb/when/internal/logging"
	"github.com/aidanlsb/when/internal/ui"
)

var (
	// Global flags
	configPath string
	todayFlag  string // Reference date override (YYYY-MM-DD or phrase)
	tzFlag     string
	matchFlag  string
	verbose    bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	logger             = logging.NewNop()
	location           = time.Local
	matchMode          = dates.MatchSubstring
	referenceDate      time.Time
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "when",
	Short: "when - resolve relative date phrases",
	Long: `when turns relative date phrases like "last friday", "this monday" or
"yesterday" into calendar dates, and groups dated records by day.

Phrases it does not recognize are printed back unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version", "guide":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		resolvedConfigPath = config.ResolveConfigPath(configPath)
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" && (cmd.Name() == "init" || cmd.Name() == "path") {
			return nil
		}

		loaded, err := loadGlobalConfig()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Run 'when config path' to locate the file")
		}
		cfg = loaded

		ui.ConfigureTheme(cfg.UI.Accent)
		logger = logging.New(logging.Options{Level: cfg.Log.Level, Verbose: verbose})

		return resolveSettings()
	},
}

// Execute runs the CLI.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	err := rootCmd.Execute()
	if err != nil {
		var reported exitError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Reference date used as today (YYYY-MM-DD or a phrase, matched per --match)")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "IANA timezone for the reference date (overrides resolve.timezone)")
	rootCmd.PersistentFlags().StringVar(&matchFlag, "match", "", "Keyword matching: substring or word (overrides resolve.match)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log resolution details to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func loadGlobalConfig() (*config.Config, error) {
	var loaded *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		// An explicit path may not exist yet ("when config set" creates it).
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			return &config.Config{}, nil
		}
		loaded, err = config.LoadFrom(configPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = &config.Config{}
	}
	return loaded, nil
}

// resolveSettings applies flag > config > default precedence for the
// timezone, match mode and reference date.
func resolveSettings() error {
	effective := *cfg
	if tzFlag != "" {
		effective.Resolve.Timezone = tzFlag
	}
	if matchFlag != "" {
		effective.Resolve.Match = matchFlag
	}

	loc, err := effective.Location()
	if err != nil {
		return handleError(ErrInvalidInput, err, "Use an IANA name such as Europe/Berlin")
	}
	mode, err := effective.MatchMode()
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	ref, err := dates.ParseReferenceDate(todayFlag, nowFunc(), loc, mode)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	location, matchMode, referenceDate = loc, mode, ref
	logger.Debug("settings resolved",
		zap.String("config", resolvedConfigPath),
		zap.String("timezone", loc.String()),
		zap.Stringer("match", mode),
		zap.String("today", ref.Format(dates.DateLayout)),
	)
	return nil
}

// newResolver returns a resolver pinned to the command's reference date.
func newResolver() *dates.Resolver {
	return dates.NewResolver(
		dates.WithReferenceDate(referenceDate),
		dates.WithMatchMode(matchMode),
	)
}

func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func getConfigPath() string {
	if resolvedConfigPath == "" {
		return config.ResolveConfigPath(configPath)
	}
	return resolvedConfigPath
}

// exitError is returned after a JSON error response has been written so the
// process still exits non-zero without cobra printing the error again.
type exitError struct{ message string }

func (e exitError) Error() string { return e.message }

func requireArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return handleErrorMsg(ErrMissingArgument, fmt.Sprintf("missing argument: %s", usage), "Run '"+cmd.CommandPath()+" --help' for usage")
		}
		return nil
	}
}
