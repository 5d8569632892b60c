package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/floatmenu/internal/output"
)

var (
	version string
	baseDir string

	logFile  string
	logDebug bool
	logClose io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "floatmenu",
	Short: "Floating menus for terminal UIs",
	Long: `floatmenu - A floating menu component for bubbletea programs.

A trigger opens a positioned panel of options from the keyboard or the
pointer. Panels flip and shift to stay on screen, and only one menu is open
at a time. Run "floatmenu stickers" for an interactive demo.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if name := firstNonFlagArg(os.Args[1:]); name != "" {
			if _, _, ferr := rootCmd.Find([]string{name}); ferr != nil {
				output.Error("unknown command %q, run 'floatmenu --help'", name)
			}
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "demo", Title: "Demo:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Log at debug level")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. Logs are discarded unless
// --log-file is given; the terminal belongs to the UI.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if logDebug {
		level = slog.LevelDebug
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logClose = f

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Debug("logging started", "command", cmd.Name(), "version", version)
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logClose == nil {
		return nil
	}
	err := logClose.Close()
	logClose = nil
	return err
}

// firstNonFlagArg returns the first argument that is not a flag.
func firstNonFlagArg(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}
