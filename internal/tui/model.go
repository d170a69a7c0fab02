package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particles/internal/metrics"
	"github.com/san-kum/particles/internal/sim"
	"github.com/sirupsen/logrus"
)

const (
	sidebarWidth = 40
	defaultCols  = 80
	defaultRows  = 24
	graphPoints  = 30
)

type TickMsg time.Time

// Model renders a running simulation into the terminal. Every tick advances
// one frame.
type Model struct {
	sim      *sim.Simulator
	recorder *metrics.Recorder
	canvas   *Canvas
	theme    Theme
	interval time.Duration
	started  time.Time
}

type Options struct {
	Theme string
	// FPS caps the tick rate. Zero uses the simulation's fps.
	FPS int
}

func NewModel(s *sim.Simulator, rec *metrics.Recorder, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = s.Config().FPS
	}
	cols, rows := canvasSize(defaultCols, defaultRows)
	return Model{
		sim:      s,
		recorder: rec,
		canvas:   NewCanvas(cols, rows),
		theme:    GetTheme(opts.Theme),
		interval: time.Second / time.Duration(fps),
		started:  time.Now(),
	}
}

// canvasSize fits the braille grid next to the sidebar.
func canvasSize(termW, termH int) (int, int) {
	return max(termW-sidebarWidth-5, 1), max(termH-1, 1)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sim.Handle(sim.Quit())
			return m, tea.Quit
		case "t":
			m.theme = m.theme.next()
		case "up", "w":
			m.sim.Handle(sim.Move(0, -1))
		case "down", "s":
			m.sim.Handle(sim.Move(0, 1))
		case "left", "a":
			m.sim.Handle(sim.Move(-1, 0))
		case "right", "d":
			m.sim.Handle(sim.Move(1, 0))
		}
	case tea.WindowSizeMsg:
		cols, rows := canvasSize(msg.Width, msg.Height)
		m.canvas = NewCanvas(cols, rows)
	case TickMsg:
		if m.sim.State() != sim.Running {
			return m, tea.Quit
		}
		m.sim.Frame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	st := m.theme.styles()
	bg := m.sim.Config().Canvas.Background.ToRGBA()
	m.canvas.Downsample(m.sim.Canvas().Image(), bg)

	var s strings.Builder
	s.WriteString(st.header.Render("PARTICLES") + "\n")
	s.WriteString(m.sim.State().String() + "\n\n")

	if m.recorder != nil {
		if h := tail(m.recorder.History("mean_speed"), graphPoints); len(h) > 1 {
			chart := asciigraph.Plot(h, asciigraph.Height(4), asciigraph.Width(graphPoints), asciigraph.Caption("Mean speed"))
			s.WriteString(st.graph.Render(chart) + "\n\n")
		}
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	cfg := m.sim.Config()
	row("Frame", fmt.Sprintf("%d", m.sim.FrameIndex()))
	row("Time", fmt.Sprintf("%.1fs", time.Since(m.started).Seconds()))
	row("Particles", fmt.Sprintf("%d", cfg.Particles))
	row("Trail", fmt.Sprintf("%d %s", cfg.Trail.Depth, cfg.Trail.Type))
	row("Scheme", string(cfg.Color.Scheme))
	if m.recorder != nil {
		sum := m.recorder.Summary()
		row("Mean speed", fmt.Sprintf("%.1f", sum["mean_speed"]))
		row("Max speed", fmt.Sprintf("%.1f", sum["max_speed"]))
		row("Bounces", fmt.Sprintf("%.0f", sum["bounces"]))
	}
	row("Theme", m.theme.Name)

	s.WriteString(st.help.Render("T:Theme Q:Quit\nWASD/arrows: cursor"))

	canvasView := st.canvas.Render(m.canvas.Styled())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
}

func tail(xs []float64, n int) []float64 {
	if len(xs) > n {
		return xs[len(xs)-n:]
	}
	return xs
}

// Run shows s in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, s *sim.Simulator, rec *metrics.Recorder, opts Options) error {
	logrus.Infof("starting terminal view (%d particles)", s.Config().Particles)

	p := tea.NewProgram(NewModel(s, rec, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	s.Close()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
