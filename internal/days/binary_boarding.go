package days

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// BoardingStrategy selects which seat id to hunt for in the list.
type BoardingStrategy int

const (
	HighestInList BoardingStrategy = iota
	MissingFromList
)

func parseBoardingStrategy(s string) (BoardingStrategy, error) {
	switch s {
	case "highest-in-list":
		return HighestInList, nil
	case "missing-from-list":
		return MissingFromList, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: want highest-in-list or missing-from-list", s)
}

type boardingPass struct {
	row    int
	column int
}

func (b boardingPass) seatID() int {
	return b.row*8 + b.column
}

// parseBoardingPass decodes a 10-character binary-space-partition code:
// seven F/B characters for the row, three L/R for the column.
func parseBoardingPass(line string) (boardingPass, error) {
	if len(line) != 10 {
		return boardingPass{}, fmt.Errorf("boarding pass %q: want 10 characters", line)
	}
	row, err := decodeBSP(line[:7], 'F', 'B')
	if err != nil {
		return boardingPass{}, fmt.Errorf("boarding pass %q: %w", line, err)
	}
	column, err := decodeBSP(line[7:], 'L', 'R')
	if err != nil {
		return boardingPass{}, fmt.Errorf("boarding pass %q: %w", line, err)
	}
	return boardingPass{row: row, column: column}, nil
}

func decodeBSP(code string, zero, one byte) (int, error) {
	value := 0
	for i := 0; i < len(code); i++ {
		value <<= 1
		switch code[i] {
		case zero:
		case one:
			value |= 1
		default:
			return 0, fmt.Errorf("unexpected character %q", code[i])
		}
	}
	return value, nil
}

func highestSeatID(passes []boardingPass) int {
	highest := 0
	for _, pass := range passes {
		if id := pass.seatID(); id > highest {
			highest = id
		}
	}
	return highest
}

// missingSeatID finds the single gap in the sorted id list, or 0 when the
// list has no single-seat gap.
func missingSeatID(passes []boardingPass) int {
	ids := make([]int, 0, len(passes))
	for _, pass := range passes {
		ids = append(ids, pass.seatID())
	}
	sort.Ints(ids)
	for i := 0; i+1 < len(ids); i++ {
		if ids[i]+2 == ids[i+1] {
			return ids[i] + 1
		}
	}
	return 0
}

func boardingRun(file string, strategy BoardingStrategy) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	passes, err := input.ParseLines(lines, parseBoardingPass)
	if err != nil {
		return 0, err
	}
	switch strategy {
	case MissingFromList:
		return missingSeatID(passes), nil
	default:
		return highestSeatID(passes), nil
	}
}

func BinaryBoarding() runner.Day {
	day := runner.Day{
		Name:    "binary-boarding",
		Number:  5,
		Summary: "Seat ids decoded from binary-space-partition boarding passes",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Finds the highest seat id in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return boardingRun(rt.Config.DayInput(day.Number), HighestInList)
			},
		},
		{
			Name:    "part2",
			Summary: "Finds the missing seat id in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return boardingRun(rt.Config.DayInput(day.Number), MissingFromList)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, strategyName string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nInput is one boarding pass per line, " +
				"seven F/B characters then three L/R characters.",
			RunE: func(cmd *cobra.Command, args []string) error {
				strategy, err := parseBoardingStrategy(strategyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return boardingRun(file, strategy)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringVarP(&strategyName, "strategy", "s", "",
			"seat id to look for: highest-in-list or missing-from-list")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("strategy")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
