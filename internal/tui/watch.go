package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dealersim/internal/driver"
	"dealersim/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Model is the live watch view. The driver owns the engine and display
// window; the view only polls frames and forwards lifecycle keys.
type Model struct {
	drv      *driver.Driver
	cfg      driver.Config
	frame    driver.Frame
	interval time.Duration
}

func NewModel(drv *driver.Driver, cfg driver.Config) Model {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = driver.DefaultTickInterval
	}
	return Model{drv: drv, cfg: cfg, interval: interval}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.drv.Stop()
			return m, tea.Quit
		case "s":
			if m.drv.Running() {
				m.drv.Stop()
			} else if err := m.drv.Start(m.cfg); err != nil {
				return m, tea.Quit
			}
			m.frame = m.drv.Frame()
			return m, nil
		case "r":
			if err := m.drv.Start(m.cfg); err != nil {
				return m, tea.Quit
			}
			m.frame = m.drv.Frame()
			return m, nil
		}
	case tickMsg:
		m.frame = m.drv.Frame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render("dealership inventory")
	chart := graphStyle.Render(render.Chart(m.frame, 14, 64))

	status := statStyle.Render(fmt.Sprintf(
		"day %d   inventory %d   demand %s   delays p=%d r=%d d=%d",
		m.frame.Day,
		m.frame.Last(),
		m.cfg.Schedule.String(),
		m.cfg.Params.PerceptionDelay,
		m.cfg.Params.ResponseDelay,
		m.cfg.Params.DeliveryDelay,
	))
	if !m.frame.Running {
		status += warnStyle.Render("   [stopped]")
	}

	help := helpStyle.Render("s: stop/start  r: restart  q: quit")
	return header + "\n" + chart + "\n" + status + "\n" + help + "\n"
}
