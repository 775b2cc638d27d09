// Package logging wires charmbracelet/log and charmbracelet/lipgloss
// into a log/slog.Logger: colored per-level styling, caller/timestamp
// reporting, and a text/json format switch. The engine takes a
// *slog.Logger (engine.WithLogger) rather than writing to stdout
// directly; the batch accumulator does no logging.
package logging

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

// Format selects the wire shape of log lines.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures New. Level follows charmbracelet/log's ordering
// (Debug < Info < Warn < Error).
type Options struct {
	Format Format
	Level  charmlog.Level
	Prefix string
}

// New builds a *slog.Logger with distinct colors per level.
func New(opts Options) *slog.Logger {
	styles := charmlog.DefaultStyles()

	infoColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	styles.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(errColor)
	styles.Levels[charmlog.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(infoColor)
	styles.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(warnColor)
	styles.Levels[charmlog.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Bold(true).Foreground(debugColor)

	formatter := charmlog.TextFormatter
	if opts.Format == FormatJSON {
		formatter = charmlog.JSONFormatter
	}

	logger := charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Level:           opts.Level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}

// Discard returns a logger that drops everything, for tests and
// callers that don't want engine diagnostics on stdout.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
