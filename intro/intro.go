// Package intro renders the startup splash: banner, loading bar, then
// "press any key". It runs as its own bubbletea program before the portal
// UI takes over the terminal.
package intro

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const Version = "v0.4"

const titleArt = `
███████    ██    ██████
██         ██    ██   ██
███████    ██    ██████
     ██    ██    ██
███████ ██ ██ ██ ██      ██
`

const (
	tickInterval = 10 * time.Millisecond
	loadStep     = 0.01
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	readyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)

type tickMsg time.Time

// Model animates the loading bar and waits for a keypress once full.
type Model struct {
	bar     progress.Model
	percent float64
	done    bool
	width   int
}

func NewModel() Model {
	return Model{bar: progress.New(progress.WithDefaultGradient())}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-8, 50)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.done {
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.percent += loadStep
		if m.percent >= 1.0 {
			m.percent = 1.0
			m.done = true
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	for _, line := range strings.Split(strings.Trim(titleArt, "\n"), "\n") {
		b.WriteString(center(bannerStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	panel := panelStyle.Render("Seamhanian Information Portal (SIP)\nInitializing... " + Version)
	b.WriteString(panel)
	b.WriteString("\n\n")

	b.WriteString("Loading modules...\n")
	b.WriteString(m.bar.ViewAs(m.percent))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(readyStyle.Render("✔ Ready."))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("Press any key to continue..."))
	}

	return b.String()
}

// Run shows the splash and blocks until the user presses a key.
func Run() error {
	_, err := tea.NewProgram(NewModel()).Run()
	return err
}

func center(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
