package days

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/handheld"
	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

var errNoRepair = errors.New("no single instruction flip makes the program halt")

func handheldRun(file string, modify bool) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	instructions, err := input.ParseLines(lines, handheld.ParseLine)
	if err != nil {
		return 0, err
	}
	program := handheld.Program(instructions)

	result := handheld.Run(program)
	if !modify || result.Halted {
		return result.Acc, nil
	}
	acc, ok := handheld.Repair(program)
	if !ok {
		return 0, errNoRepair
	}
	return acc, nil
}

func HandheldHalting() runner.Day {
	day := runner.Day{
		Name:    "handheld-halting",
		Number:  8,
		Summary: "Accumulator value of a looping handheld program",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Accumulator when the default program first loops or halts",
			Run: func(rt *runner.Runtime) (int, error) {
				return handheldRun(rt.Config.DayInput(day.Number), false)
			},
		},
		{
			Name:    "part2",
			Summary: "Accumulator after repairing the default program to halt",
			Run: func(rt *runner.Runtime) (int, error) {
				return handheldRun(rt.Config.DayInput(day.Number), true)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		var modify bool
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nInput is one acc/jmp/nop instruction per line " +
				"with a signed operand.",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runner.Solve(rt, day.Name, func() (int, error) {
					return handheldRun(file, modify)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().BoolVarP(&modify, "modify", "m", false,
			"attempt a single jmp/nop flip to make the program halt")
		_ = cmd.MarkFlagRequired("file")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
