// Package tui provides a Bubble Tea terminal host for the chart engine.
//
// The host owns a chart.Model, renders it into half-block cells on every
// paint and plays the reveal animation with tick messages.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/piechart/internal/anim"
	"github.com/handiism/piechart/internal/chart"
	"github.com/handiism/piechart/internal/config"
	"github.com/handiism/piechart/internal/demo"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4"))
)

// chrome is the number of terminal rows used by everything but the chart:
// title, status, progress bar, help and the box border.
const chrome = 8

const frameInterval = time.Second / 30

// frameMsg advances animation playback.
type frameMsg time.Time

// Model is the Bubble Tea model for the TUI.
type Model struct {
	chart    *chart.Model
	gen      *demo.Generator
	settings *config.Settings

	segments []chart.Segment
	bounds   chart.Bounds
	player   *anim.Player
	frame    time.Time
	ticking  bool

	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	now func() time.Time
}

// NewModel creates a new TUI model with random initial parts.
func NewModel(settings *config.Settings, gen *demo.Generator) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if gen == nil {
		gen = demo.NewGenerator(nil)
	}

	m := chart.NewModel()
	settings.ApplyTo(m)
	m.SetParts(gen.Parts())

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 30

	return Model{
		chart:    m,
		gen:      gen,
		settings: settings,
		keys:     newKeyMap(),
		help:     help.New(),
		progress: prog,
		now:      time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// a resize only recomputes geometry, playback keeps going
		m.paint()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Redraw):
			m.chart.SetParts(m.gen.Parts())
			m.chart.SetMode(m.gen.Mode())
		case key.Matches(msg, m.keys.Mode):
			if m.chart.Mode().IsDonut() {
				m.chart.SetMode(chart.Pie())
			} else {
				m.chart.SetMode(chart.Donut(m.donutWidth()))
			}
		case key.Matches(msg, m.keys.Animate):
			m.chart.SetAnimationEnabled(!m.chart.AnimationEnabled())
		case key.Matches(msg, m.keys.Left):
			m.chart.SetStartAngle(m.chart.StartAngle() - m.rotateStep())
		case key.Matches(msg, m.keys.Right):
			m.chart.SetStartAngle(m.chart.StartAngle() + m.rotateStep())
		}

	case frameMsg:
		m.frame = time.Time(msg)
		m.ticking = false
	}

	if m.chart.NeedsRedraw() {
		m.paint()
	}

	if m.player.Playing(m.frame) && !m.ticking {
		m.ticking = true
		return m, tick()
	}
	return m, nil
}

// paint renders the chart for the current terminal size. A plan returned
// by the render replaces any playback in flight.
func (m *Model) paint() {
	mutated := m.chart.NeedsRedraw()
	m.bounds = canvasBounds(m.width-2, m.height-chrome)

	res := chart.Render(m.chart, m.bounds)
	m.segments = res.Segments

	switch {
	case res.Plan != nil:
		m.frame = m.now()
		m.player = anim.NewPlayer(res.Plan, m.settings.TimeUnit(), m.frame)
	case mutated && !m.chart.NeedsRedraw():
		m.player = nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// donutWidth scales the configured line width to the terminal canvas.
func (m Model) donutWidth() float64 {
	side := math.Min(m.bounds.Width, m.bounds.Height)
	if side <= 0 || m.settings.Width <= 0 {
		return m.settings.LineWidth
	}
	return math.Max(1, m.settings.LineWidth*side/float64(m.settings.Width))
}

func (m Model) rotateStep() float64 {
	return m.settings.RotateStep * math.Pi / 180
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("◔ piechart"))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.status()))
	b.WriteString("\n")

	canvas := renderCanvas(m.bounds, m.segments, m.player.Fractions(len(m.segments), m.frame))
	if canvas == "" {
		canvas = dimStyle.Render("terminal too small")
	}
	b.WriteString(boxStyle.Render(canvas))
	b.WriteString("\n")

	b.WriteString(m.progress.ViewAs(m.player.Progress(m.frame)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) status() string {
	mode := m.chart.Mode().String()
	if m.chart.Mode().IsDonut() {
		mode = fmt.Sprintf("donut %.0fpx", m.chart.Mode().LineWidth())
	}
	animation := "on"
	if !m.chart.AnimationEnabled() {
		animation = "off"
	}
	angle := math.Mod(m.chart.StartAngle()*180/math.Pi, 360)
	if angle < 0 {
		angle += 360
	}
	return fmt.Sprintf("%d parts • total %.0f • %s • start %.0f° • animation %s",
		len(m.chart.Parts()), m.chart.TotalWeight(), mode, angle, animation)
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings, nil), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
