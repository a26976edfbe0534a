// Package tui provides the Bubble Tea monitoring interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/pollhz/pollhz/internal/clock"
	"github.com/pollhz/pollhz/internal/hz"
	"github.com/pollhz/pollhz/internal/model"
	"github.com/pollhz/pollhz/internal/stats"
)

const (
	sparkLabelWidth = 10
	tableHeight     = 4
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	sparkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg time.Time

// Model implements the Bubble Tea monitoring UI. It is the single writer
// of the registry: events are recorded synchronously in Update and the
// report is refreshed from the same loop on each tick.
type Model struct {
	cfg      model.Config
	registry *hz.Registry
	clk      *clock.Clock

	tbl    table.Model
	width  int
	height int

	summaries []hz.Summary
	recorded  uint64
	startedAt time.Time
}

// NewModel constructs a monitoring model.
func NewModel(cfg model.Config, registry *hz.Registry, clk *clock.Clock) *Model {
	m := &Model{
		cfg:       cfg,
		registry:  registry,
		clk:       clk,
		startedAt: time.Now(),
	}
	m.tbl = table.New(
		table.WithColumns(tableColumns()),
		table.WithHeight(tableHeight),
	)
	m.tbl.SetStyles(monitorTableStyles())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		// Every keystroke is a measured event, so only non-letter chords
		// can quit. Ctrl+C and Esc stand in for SIGINT and window close.
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.refresh()
			return m, tea.Quit
		}
		m.record(msg)
		return m, nil
	case tea.MouseMsg:
		m.record(msg)
		return m, nil
	case tickMsg:
		m.refresh()
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render("pollhz")
	status := headerStyle.Render(fmt.Sprintf("events %d  elapsed %s  window %d  refresh %s",
		m.recorded, time.Since(m.startedAt).Round(time.Second), hz.WindowSize, m.cfg.ReportEvery))
	sections := []string{title + "  " + status, "", m.tbl.View()}
	if sparks := m.renderSparklines(); sparks != "" {
		sections = append(sections, "", sparks)
	}
	help := "Mash keys and wiggle the mouse. Ctrl+C or Esc to finish."
	sections = append(sections, "", footerStyle.Render(help))
	return strings.Join(sections, "\n")
}

// Summaries returns the statistics from the most recent refresh so the
// final report can be printed after the program exits.
func (m *Model) Summaries() []hz.Summary {
	return m.summaries
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.ReportEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) record(msg tea.Msg) {
	class, ok := classify(msg, m.cfg.MouseMotion)
	if !ok {
		return
	}
	ts := m.clk.NowMillis()
	freq, ok := m.registry.Record(class, ts)
	if !ok {
		log.Debug().Stringer("class", class).Uint64("ts", ts).Msg("event discarded")
		return
	}
	m.recorded++
	log.Debug().Stringer("class", class).Uint64("ts", ts).Float64("hz", freq).Msg("event recorded")
}

func (m *Model) refresh() {
	m.summaries = hz.Summarize(m.registry)
	rows := make([]table.Row, 0, len(m.summaries))
	for _, s := range m.summaries {
		tracker := m.registry.Tracker(s.Class)
		rows = append(rows, table.Row{
			s.Class.String(),
			fmt.Sprintf("%d", s.Samples),
			fmt.Sprintf("%.1f", tracker.Latest()),
			fmt.Sprintf("%.1f", s.Max),
			fmt.Sprintf("%.1f", s.Avg),
		})
	}
	m.tbl.SetRows(rows)
}

func (m *Model) renderSparklines() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	sparkWidth := stats.SparkWidthFor(width, sparkLabelWidth)
	var lines []string
	for _, s := range m.summaries {
		freqs := m.registry.Tracker(s.Class).Frequencies()
		spark := stats.Sparkline(stats.Resample(freqs, sparkWidth))
		label := runewidth.FillRight(s.Class.String(), sparkLabelWidth)
		lines = append(lines, headerStyle.Render(label)+sparkStyle.Render(spark))
	}
	return strings.Join(lines, "\n")
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "Class", Width: 10},
		{Title: "Window", Width: 6},
		{Title: "Last Hz", Width: 8},
		{Title: "Max Hz", Width: 8},
		{Title: "Avg Hz", Width: 8},
	}
}

func monitorTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0"))
	return styles
}
