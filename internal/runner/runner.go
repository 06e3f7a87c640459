// Package runner holds the day registry and the per-invocation runtime
// shared by the CLI and the TUI.
package runner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ktsimpso/adventofcode2020/internal/config"
)

// Runtime is everything a day solution needs to run: configuration, a
// structured logger, and the writer results are printed to. Each process
// invocation gets a fresh run id for log correlation.
type Runtime struct {
	Config config.Config
	Logger *zap.Logger
	Out    io.Writer
	RunID  string
}

func NewRuntime(cfg config.Config, logger *zap.Logger) *Runtime {
	return &Runtime{
		Config: cfg,
		Logger: logger,
		Out:    os.Stdout,
		RunID:  uuid.NewString(),
	}
}

// Report logs a solved puzzle and prints the numeric answer to Out. The
// answer is the only thing written to stdout so it stays scriptable.
func (rt *Runtime) Report(day string, answer int, took time.Duration) {
	rt.Logger.Info("solved",
		zap.String("run_id", rt.RunID),
		zap.String("day", day),
		zap.Int("answer", answer),
		zap.Duration("took", took),
	)
	fmt.Fprintln(rt.Out, answer)
}

// Part is one canonical variant of a puzzle day, runnable without any
// flag parsing. The part1/part2 subcommands and the TUI both go through
// here.
type Part struct {
	Name    string
	Summary string
	Run     func(rt *Runtime) (int, error)
}

// Day is one registered puzzle. Number is the day's position in the
// calendar and fixes the canonical input path dayN/input.txt. New builds
// the full cobra command with the day-specific flag surface.
type Day struct {
	Name    string
	Number  int
	Summary string
	New     func(rt *Runtime) *cobra.Command
	Parts   []Part
}

// Registry is the ordered list of days, built explicitly at process start
// and passed to the dispatcher. There is deliberately no package-level
// registration.
type Registry []Day

func (r Registry) Find(name string) (Day, bool) {
	for _, day := range r {
		if day.Name == name {
			return day, true
		}
	}
	return Day{}, false
}

// Solve times fn, reports the answer under the day's name, and maps a
// failure straight through. Day commands end with this.
func Solve(rt *Runtime, day string, fn func() (int, error)) error {
	start := time.Now()
	answer, err := fn()
	if err != nil {
		return fmt.Errorf("%s: %w", day, err)
	}
	rt.Report(day, answer, time.Since(start))
	return nil
}

// PartCommands builds the part1/part2 convenience subcommands for a day
// from its canonical parts.
func PartCommands(rt *Runtime, day Day) []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(day.Parts))
	for _, part := range day.Parts {
		part := part
		commands = append(commands, &cobra.Command{
			Use:   part.Name,
			Short: part.Summary,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return Solve(rt, day.Name+" "+part.Name, func() (int, error) {
					return part.Run(rt)
				})
			},
		})
	}
	return commands
}
