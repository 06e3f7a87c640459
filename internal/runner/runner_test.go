package runner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ktsimpso/adventofcode2020/internal/config"
)

func testRuntime() (*Runtime, *bytes.Buffer) {
	rt := NewRuntime(config.Default(), zap.NewNop())
	out := &bytes.Buffer{}
	rt.Out = out
	return rt, out
}

func TestSolve_PrintsOnlyTheAnswer(t *testing.T) {
	rt, out := testRuntime()

	err := Solve(rt, "report-repair", func() (int, error) {
		return 514579, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "514579\n", out.String())
}

func TestSolve_WrapsFailures(t *testing.T) {
	rt, out := testRuntime()
	sentinel := errors.New("no values found")

	err := Solve(rt, "report-repair", func() (int, error) {
		return 0, sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "report-repair")
	assert.Empty(t, out.String(), "failures must not print an answer")
}

func TestRegistryFind(t *testing.T) {
	registry := Registry{
		{Name: "alpha", Number: 1},
		{Name: "beta", Number: 2},
	}

	day, ok := registry.Find("beta")
	require.True(t, ok)
	assert.Equal(t, 2, day.Number)

	_, ok = registry.Find("gamma")
	assert.False(t, ok)
}

func TestNewRuntime_AssignsRunID(t *testing.T) {
	first := NewRuntime(config.Default(), zap.NewNop())
	second := NewRuntime(config.Default(), zap.NewNop())
	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestPartCommands(t *testing.T) {
	rt, out := testRuntime()
	day := Day{
		Name: "sample",
		Parts: []Part{
			{Name: "part1", Summary: "first", Run: func(rt *Runtime) (int, error) { return 7, nil }},
			{Name: "part2", Summary: "second", Run: func(rt *Runtime) (int, error) { return 9, nil }},
		},
	}

	commands := PartCommands(rt, day)
	require.Len(t, commands, 2)
	assert.Equal(t, "part1", commands[0].Use)
	assert.Equal(t, "part2", commands[1].Use)

	require.NoError(t, commands[1].RunE(commands[1], nil))
	assert.Equal(t, "9\n", out.String())
}
