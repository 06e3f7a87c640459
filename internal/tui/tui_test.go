package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ktsimpso/adventofcode2020/internal/config"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

func testModel() *Model {
	rt := runner.NewRuntime(config.Default(), zap.NewNop())
	registry := runner.Registry{
		{
			Name:    "report-repair",
			Number:  1,
			Summary: "first puzzle",
			Parts: []runner.Part{
				{Name: "part1", Run: func(rt *runner.Runtime) (int, error) { return 514579, nil }},
				{Name: "part2", Run: func(rt *runner.Runtime) (int, error) { return 0, errors.New("boom") }},
			},
		},
		{
			Name:    "shuttle-search",
			Number:  13,
			Summary: "last puzzle",
			Parts: []runner.Part{
				{Name: "part1", Run: func(rt *runner.Runtime) (int, error) { return 295, nil }},
			},
		},
	}
	return New(rt, registry)
}

func keyMsg(key string) tea.KeyMsg {
	if key == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestCursorMovement(t *testing.T) {
	m := testModel()

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}
	m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor after down = %d, want 1", m.cursor)
	}
	// Cursor stops at the last day.
	m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor ran past the registry: %d", m.cursor)
	}
	m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor after up = %d, want 0", m.cursor)
	}
	m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor ran before the registry: %d", m.cursor)
	}
}

func TestEnterRunsSelectedDay(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	if m.running != 2 {
		t.Fatalf("running = %d, want 2 parts in flight", m.running)
	}
	// A second enter while running is ignored.
	_, cmd = m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("enter was not ignored while parts were running")
	}
}

func TestPartResultsAppendToHistory(t *testing.T) {
	m := testModel()
	m.running = 2

	m.Update(partResultMsg{day: "report-repair", part: "part1", answer: 514579})
	m.Update(partResultMsg{day: "report-repair", part: "part2", err: errors.New("boom")})

	if m.running != 0 {
		t.Fatalf("running = %d, want 0", m.running)
	}
	if len(m.history) != 2 {
		t.Fatalf("history holds %d entries, want 2", len(m.history))
	}
	if !strings.Contains(m.history[0], "514579") {
		t.Errorf("history[0] = %q, want the answer in it", m.history[0])
	}
	if !strings.Contains(m.history[1], "boom") {
		t.Errorf("history[1] = %q, want the error in it", m.history[1])
	}
}

func TestView_ListsDays(t *testing.T) {
	m := testModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, name := range []string{"report-repair", "shuttle-search"} {
		if !strings.Contains(view, name) {
			t.Errorf("view does not list %q", name)
		}
	}
	if !strings.Contains(view, "first puzzle") {
		t.Error("view does not show the selected day's summary")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("q produced %v, want tea.Quit", msg)
	}
}
