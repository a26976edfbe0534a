// Package main provides the CLI entrypoint for pollhz.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pollhz/pollhz/internal/clock"
	"github.com/pollhz/pollhz/internal/config"
	"github.com/pollhz/pollhz/internal/generator"
	"github.com/pollhz/pollhz/internal/hz"
	"github.com/pollhz/pollhz/internal/model"
	"github.com/pollhz/pollhz/internal/stats"
	"github.com/pollhz/pollhz/internal/tui"
)

var version = "0.1.0"

const (
	defaultReportEvery = 500 * time.Millisecond
	defaultMouseMotion = true

	defaultDemoDuration = 5 * time.Second
	defaultKeyboardHz   = 30.0
	defaultMouseHz      = 125.0
	defaultDemoJitter   = 0.2
)

const sparkLabelWidth = 10

var (
	monitorReportEvery time.Duration
	monitorMouseMotion bool
	monitorLogFile     string
	monitorLogPretty   bool

	demoDuration   time.Duration
	demoSeed       int64
	demoKeyboardHz float64
	demoMouseHz    float64
	demoJitter     float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pollhz",
		Short:         "Measure input-device polling rates",
		Long:          "pollhz times keyboard and mouse events to estimate how fast each device reports, e.g. to verify a mouse's advertised polling rate.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runMonitorCmd,
	}

	rootCmd.Flags().DurationVar(&monitorReportEvery, "report-every", defaultReportEvery, "report refresh cadence")
	rootCmd.Flags().BoolVar(&monitorMouseMotion, "mouse-motion", defaultMouseMotion, "count mouse motion events")
	rootCmd.Flags().StringVar(&monitorLogFile, "log-file", "", "debug log file (empty disables logging)")
	rootCmd.Flags().BoolVar(&monitorLogPretty, "log-pretty", false, "prettify log output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}

func runMonitorCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyDurationConfig(cmd, "report-every", &monitorReportEvery, fileCfg.Monitor.ReportEvery); err != nil {
		return err
	}
	applyBoolConfig(cmd, "mouse-motion", &monitorMouseMotion, fileCfg.Monitor.MouseMotion)
	applyStringConfig(cmd, "log-file", &monitorLogFile, fileCfg.Monitor.LogFile)
	applyBoolConfig(cmd, "log-pretty", &monitorLogPretty, fileCfg.Monitor.LogPretty)

	cfg := model.Config{
		ReportEvery: monitorReportEvery,
		MouseMotion: monitorMouseMotion,
		LogFile:     monitorLogFile,
		LogPretty:   monitorLogPretty,
	}
	if cfg.ReportEvery <= 0 {
		return fmt.Errorf("--report-every must be > 0")
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	registry := &hz.Registry{}
	m := tui.NewModel(cfg, registry, clock.New())
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final, ok := finalModel.(*tui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", finalModel)
	}
	return hz.RenderText(cmd.OutOrStdout(), final.Summaries())
}

// setupLogger routes debug logs to a file; the TUI owns the terminal, so
// without a file logging is disabled entirely.
func setupLogger(cfg model.Config) (func(), error) {
	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	var w io.Writer = file
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: file}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Debug().Str("version", version).Msg("logger set up")
	return func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the tracker against synthetic event streams",
		Args:  cobra.NoArgs,
		RunE:  runDemoCmd,
	}
	cmd.Flags().DurationVar(&demoDuration, "duration", defaultDemoDuration, "simulated capture duration")
	cmd.Flags().Int64Var(&demoSeed, "seed", 0, "random seed for jitter (0=random)")
	cmd.Flags().Float64Var(&demoKeyboardHz, "keyboard-hz", defaultKeyboardHz, "simulated keyboard event rate (0 disables)")
	cmd.Flags().Float64Var(&demoMouseHz, "mouse-hz", defaultMouseHz, "simulated mouse event rate (0 disables)")
	cmd.Flags().Float64Var(&demoJitter, "jitter", defaultDemoJitter, "interval jitter fraction (0-1)")
	return cmd
}

func runDemoCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.DemoConfig{
		Duration:   demoDuration,
		Seed:       demoSeed,
		KeyboardHz: demoKeyboardHz,
		MouseHz:    demoMouseHz,
		Jitter:     demoJitter,
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.Jitter < 0 || cfg.Jitter >= 1 {
		return fmt.Errorf("--jitter must be in [0, 1)")
	}

	gen := generator.New(cfg.Seed)
	registry := &hz.Registry{}
	streams := []generator.Stream{
		{Class: hz.Keyboard, RateHz: cfg.KeyboardHz, Jitter: cfg.Jitter},
		{Class: hz.Mouse, RateHz: cfg.MouseHz, Jitter: cfg.Jitter},
	}
	for _, stream := range streams {
		for _, ts := range gen.Events(stream, cfg.Duration) {
			registry.Record(stream.Class, ts)
		}
	}

	out := cmd.OutOrStdout()
	summaries := hz.Summarize(registry)
	if err := hz.RenderText(out, summaries); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	sparkWidth := stats.SparkWidthFor(stats.TerminalWidth(), sparkLabelWidth)
	for _, s := range summaries {
		freqs := registry.Tracker(s.Class).Frequencies()
		spark := stats.Sparkline(stats.Resample(freqs, sparkWidth))
		label := runewidth.FillRight(s.Class.String(), sparkLabelWidth)
		if _, err := fmt.Fprintln(out, label+spark); err != nil {
			return fmt.Errorf("failed to write sparkline: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pollhz configuration
# Uncomment a value to enable it. CLI flags override config values.

[monitor]
# report-every = %q      # Report refresh cadence
# mouse-motion = %t       # Count mouse motion events
# log-file = ""             # Debug log file (empty disables logging)
# log-pretty = false        # Prettify log output
`,
		defaultReportEvery.String(),
		defaultMouseMotion,
	)
}
