package days

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
	"github.com/ktsimpso/adventofcode2020/internal/sumcheck"
)

func sumOf(numbers []int, target, n int) ([]int, bool) {
	return sumcheck.FromSlice(numbers).FindSumOfN(target, n)
}

// expenseProduct finds count entries summing to target and multiplies
// them together. Not finding a combination is a legitimate negative
// outcome, reported as an error only because the command has nothing else
// to print.
func expenseProduct(numbers []int, target, count int) (int, error) {
	combination, ok := sumOf(numbers, target, count)
	if !ok {
		return 0, fmt.Errorf("no %d values sum to %d", count, target)
	}
	product := 1
	for _, value := range combination {
		product *= value
	}
	return product, nil
}

func reportRepairRun(file string, target, count int) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	numbers, err := input.Ints(lines)
	if err != nil {
		return 0, err
	}
	return expenseProduct(numbers, target, count)
}

func ReportRepair() runner.Day {
	day := runner.Day{
		Name:    "report-repair",
		Number:  1,
		Summary: "Product of the expense report entries that sum to a target",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Finds two entries summing to 2020 in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return reportRepairRun(rt.Config.DayInput(day.Number), 2020, 2)
			},
		},
		{
			Name:    "part2",
			Summary: "Finds three entries summing to 2020 in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return reportRepairRun(rt.Config.DayInput(day.Number), 2020, 3)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		var target, count int
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long:  day.Summary + ".\n\nInput is one integer per line.",
			RunE: func(cmd *cobra.Command, args []string) error {
				if count < 2 {
					return fmt.Errorf("count must be at least 2, got %d", count)
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return reportRepairRun(file, target, count)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().IntVarP(&target, "target", "t", 2020, "sum the entries must reach")
		cmd.Flags().IntVarP(&count, "count", "n", 2, "how many entries must make up the sum")
		_ = cmd.MarkFlagRequired("file")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
