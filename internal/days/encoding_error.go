package days

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
	"github.com/ktsimpso/adventofcode2020/internal/sumcheck"
)

// firstInvalidNumber finds the first number that is not the sum of two of
// the preambleLength numbers before it.
func firstInvalidNumber(numbers []int, preambleLength int) (int, bool) {
	if len(numbers) <= preambleLength {
		return 0, false
	}
	checker := sumcheck.FromSlice(numbers[:preambleLength])
	for i := preambleLength; i < len(numbers); i++ {
		target := numbers[i]
		if _, ok := checker.FindSumOfN(target, 2); !ok {
			return target, true
		}
		checker.Remove(numbers[i-preambleLength])
		checker.Add(target)
	}
	return 0, false
}

// contiguousRunSummingTo slides a window across numbers until it sums to
// target, growing on the right when short and shrinking on the left when
// over.
func contiguousRunSummingTo(numbers []int, target int) ([]int, bool) {
	low, high := 0, 1
	for high <= len(numbers) {
		sum := 0
		for _, n := range numbers[low:high] {
			sum += n
		}
		switch {
		case low < high && sum > target:
			low++
		case low == high || sum < target:
			high++
		default:
			return numbers[low:high], true
		}
	}
	return nil, false
}

func exploitValue(run []int) int {
	min, max := run[0], run[0]
	for _, n := range run[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min + max
}

func encodingRun(file string, preambleLength int, exploit bool) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	numbers, err := input.Ints(lines)
	if err != nil {
		return 0, err
	}
	invalid, ok := firstInvalidNumber(numbers, preambleLength)
	if !ok {
		return 0, fmt.Errorf("every number fits the encoding with preamble %d", preambleLength)
	}
	if !exploit {
		return invalid, nil
	}
	run, ok := contiguousRunSummingTo(numbers, invalid)
	if !ok {
		return 0, fmt.Errorf("no contiguous run sums to %d", invalid)
	}
	return exploitValue(run), nil
}

func EncodingError() runner.Day {
	day := runner.Day{
		Name:    "encoding-error",
		Number:  9,
		Summary: "First number in an XMAS stream that breaks the encoding",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Finds the invalid number with preamble 25 in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return encodingRun(rt.Config.DayInput(day.Number), 25, false)
			},
		},
		{
			Name:    "part2",
			Summary: "Finds the encryption weakness derived from the invalid number",
			Run: func(rt *runner.Runtime) (int, error) {
				return encodingRun(rt.Config.DayInput(day.Number), 25, true)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		var preambleLength int
		var exploit bool
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long:  day.Summary + ".\n\nInput is one integer per line.",
			RunE: func(cmd *cobra.Command, args []string) error {
				if preambleLength < 1 {
					return fmt.Errorf("preamble must be positive, got %d", preambleLength)
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return encodingRun(file, preambleLength, exploit)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().IntVarP(&preambleLength, "preamble", "p", 0,
			"length of the XMAS preamble")
		cmd.Flags().BoolVarP(&exploit, "exploit", "e", false,
			"find the exploit value from the contiguous run summing to the invalid number")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("preamble")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
