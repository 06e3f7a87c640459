// Package tui implements an interactive browser over the day registry:
// pick a day, run its canonical parts against the configured inputs, and
// read the results without leaving the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// Command wraps the TUI in a cobra subcommand.
func Command(rt *runner.Runtime, registry runner.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and run the puzzle days interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(New(rt, registry), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous day")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run day")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DD3FC"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	answerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#34D399"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	resultsBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)
)

// partResultMsg carries one finished part run back into the update loop.
type partResultMsg struct {
	day    string
	part   string
	answer int
	took   time.Duration
	err    error
}

// Model is the TUI state: the registry on the left, run results on the
// right.
type Model struct {
	rt       *runner.Runtime
	registry runner.Registry

	cursor  int
	running int // parts still in flight for the selected day
	results viewport.Model
	history []string
	width   int
	height  int
}

func New(rt *runner.Runtime, registry runner.Registry) *Model {
	results := viewport.New(40, 10)
	return &Model{
		rt:       rt,
		registry: registry,
		results:  results,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = max(20, msg.Width-listWidth(m.registry)-8)
		m.results.Height = max(5, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.registry)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keys.Enter):
			if m.running > 0 {
				return m, nil
			}
			return m, m.runSelected()
		}

	case partResultMsg:
		m.running--
		m.history = append(m.history, renderResult(msg))
		m.results.SetContent(strings.Join(m.history, "\n"))
		m.results.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// runSelected kicks off every canonical part of the day under the cursor.
func (m *Model) runSelected() tea.Cmd {
	day := m.registry[m.cursor]
	commands := make([]tea.Cmd, 0, len(day.Parts))
	for _, part := range day.Parts {
		part := part
		m.running++
		commands = append(commands, func() tea.Msg {
			start := time.Now()
			answer, err := part.Run(m.rt)
			return partResultMsg{
				day:    day.Name,
				part:   part.Name,
				answer: answer,
				took:   time.Since(start),
				err:    err,
			}
		})
	}
	return tea.Sequence(commands...)
}

func renderResult(msg partResultMsg) string {
	label := fmt.Sprintf("%s %s", msg.day, msg.part)
	if msg.err != nil {
		return fmt.Sprintf("%s  %s", label, errorStyle.Render(msg.err.Error()))
	}
	return fmt.Sprintf("%s  %s  %s",
		label,
		answerStyle.Render(fmt.Sprintf("%d", msg.answer)),
		summaryStyle.Render(msg.took.Round(time.Microsecond).String()),
	)
}

func listWidth(registry runner.Registry) int {
	width := 0
	for _, day := range registry {
		if len(day.Name) > width {
			width = len(day.Name)
		}
	}
	return width + 4
}

func (m *Model) View() string {
	var list strings.Builder
	list.WriteString(titleStyle.Render("advent of code 2020"))
	list.WriteString("\n\n")
	for i, day := range m.registry {
		marker := "  "
		name := day.Name
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		list.WriteString(fmt.Sprintf("%s%-2d %s\n", marker, day.Number, name))
	}

	status := m.registry[m.cursor].Summary
	if m.running > 0 {
		status = "running..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		list.String(),
		resultsBorder.Render(m.results.View()),
	)
	footer := footerStyle.Render("↑/↓ select · enter run · q quit  |  " + status)
	return body + "\n" + footer
}
