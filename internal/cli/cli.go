// Package cli wires the command line: the interactive calculator and the
// one-shot diff and sum commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stigoleg/timecalc/internal/config"
	"github.com/stigoleg/timecalc/internal/mode"
	"github.com/stigoleg/timecalc/internal/ui"
)

// DebugLogPath is where --debug writes its log.
const DebugLogPath = "timecalc-debug.log"

// App holds the CLI application state.
type App struct {
	version string
	root    *cobra.Command
	config  *config.Config
	signals []os.Signal

	configPath string
	startMode  string
	debug      bool
	noColor    bool

	logFile io.Closer
	runTUI  func(ui.Options, ...os.Signal) error
}

// Option configures an App.
type Option func(*App)

// WithSignals sets the signals that stop the TUI.
func WithSignals(signals ...os.Signal) Option {
	return func(a *App) {
		a.signals = signals
	}
}

// NewApp creates a new CLI application.
func NewApp(version string, opts ...Option) *App {
	a := &App{version: version, runTUI: ui.Run}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "timecalc",
		Short: "Worked time and duration totals in the terminal",
		Long: `timecalc computes worked time between a start and an end time minus a
break (an end before the start counts as the next day), or adds two
durations written as "h:mm" or plain minutes.

Without a subcommand it opens the interactive calculator.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runInteractive()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write a debug log to "+DebugLogPath)
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.Flags().StringVarP(&a.startMode, "mode", "m", "diff", "Mode to open in: diff or sum")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.diffCmd())
	a.root.AddCommand(a.sumCmd())

	return a
}

// Root returns the root command, for completion and man page generation.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the CLI application. The debug log is closed here rather than
// in a post-run hook, since cobra skips those when a command fails.
func (a *App) Execute() error {
	defer a.teardown()
	return a.root.Execute()
}

// setup routes logging and loads the config before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.debug {
		f, err := tea.LogToFile(DebugLogPath, "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		a.logFile = f
	} else {
		log.SetOutput(io.Discard)
	}

	if a.noColor || !isTerminal(cmd.OutOrStdout()) {
		DisableColor()
	}

	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg
	return nil
}

func (a *App) teardown() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func (a *App) runInteractive() error {
	m, err := mode.ParseMode(a.startMode)
	if err != nil {
		return err
	}
	return a.runTUI(ui.Options{
		Mode:           m,
		BreakShortcuts: a.config.Breaks.Shortcuts,
		AltScreen:      a.config.UI.AltScreen,
		Version:        a.version,
	}, a.signals...)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timecalc %s\n", a.version)
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration in effect after defaults, the config file and
TIMECALC_* environment variables are merged.

With --init, write the defaults to the config file if it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !initFile {
				fmt.Fprint(cmd.OutOrStdout(), a.config.String())
				return nil
			}

			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := config.Default().SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file")
	return cmd
}
