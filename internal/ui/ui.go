// Package ui is the interactive drawbatch demo: a bubbletea program that
// renders one frame per tick through draw producers onto a layered console.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idursun/drawbatch/internal/config"
	"github.com/idursun/drawbatch/internal/console"
	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/frame"
)

const shadeStep = 0.1

type frameMsg time.Time

type Model struct {
	keyMap   KeyMap
	help     help.Model
	buf      *draw.CommandBuffer
	console  *console.Console
	runner   *frame.Runner
	scene    *scene
	renderer *lipgloss.Renderer
	logger   *slog.Logger
	interval time.Duration
	paused   bool
	stats    frame.FrameStats
	err      error
}

type Option func(*Model)

// WithRenderer sets the renderer used for the console and the status line.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

func NewModel(cfg config.Config, opts ...Option) *Model {
	m := &Model{
		keyMap:   DefaultKeyMap(),
		help:     help.New(),
		renderer: lipgloss.DefaultRenderer(),
		interval: cfg.TickInterval(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = draw.NopLogger()
	}

	m.buf = draw.NewCommandBuffer(cfg.DrawOptions(m.logger)...)
	m.console = console.New(cfg.Console.Width, cfg.Console.Height, cfg.ConsoleOptions()...)
	m.runner = frame.New(m.buf, m.console, cfg.FrameOptions(m.logger)...)
	m.scene = &scene{
		width:  m.console.Width(),
		height: m.console.Height(),
		layers: m.console.Layers(),
	}
	for _, p := range m.scene.producers() {
		m.runner.Add(p.name, p.fn)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("drawbatch"), m.scheduleFrame())
}

func (m *Model) scheduleFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.paused {
			m.renderFrame()
		}
		return m.scheduleFrame()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return tea.Quit
		case key.Matches(msg, m.keyMap.Pause):
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		case key.Matches(msg, m.keyMap.Step):
			if m.paused {
				m.renderFrame()
			}
		case key.Matches(msg, m.keyMap.ShadeUp):
			m.scene.shade = min(m.scene.shade+shadeStep, 1)
		case key.Matches(msg, m.keyMap.ShadeDown):
			m.scene.shade = max(m.scene.shade-shadeStep, 0)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return nil
}

func (m *Model) renderFrame() {
	m.err = m.Step(context.Background())
}

// Step renders one frame regardless of the pause state.
func (m *Model) Step(ctx context.Context) error {
	stats, err := m.runner.Frame(ctx)
	m.stats = stats
	m.scene.tick++
	return err
}

// Console returns the display frames are replayed onto.
func (m *Model) Console() *console.Console {
	return m.console
}

func (m *Model) PoolStats() draw.PoolStats {
	return m.buf.Pool().Stats()
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.console.Styled(m.renderer))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keyMap.ShortHelp()))
	return b.String()
}

func (m *Model) statusLine() string {
	label := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffff00"))
	muted := m.renderer.NewStyle().Foreground(lipgloss.Color("#808080"))

	pool := m.PoolStats()
	parts := []string{
		label.Render("drawbatch"),
		fmt.Sprintf("frame %d", m.stats.Frame),
		fmt.Sprintf("commands %d", m.stats.Commands),
		muted.Render(fmt.Sprintf("pool %d hit %d miss", pool.Hits, pool.Misses)),
		fmt.Sprintf("shade %.1f", m.scene.shade),
	}
	if m.paused {
		parts = append(parts, label.Render("paused"))
	}
	if m.err != nil {
		parts = append(parts, m.renderer.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render(m.err.Error()))
	}
	return strings.Join(parts, "  ")
}

var _ tea.Model = (*wrapper)(nil)

type wrapper struct {
	ui *Model
}

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return w, w.ui.Update(msg)
}

func (w *wrapper) View() string {
	return w.ui.View()
}

// New returns the demo as a tea.Model.
func New(cfg config.Config, opts ...Option) tea.Model {
	return &wrapper{ui: NewModel(cfg, opts...)}
}
