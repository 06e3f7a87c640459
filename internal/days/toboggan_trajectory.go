package days

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// Slope is a toboggan trajectory: right units then down units per step.
type Slope struct {
	Right int
	Down  int
}

func parseSlope(s string) (Slope, error) {
	right, down, found := strings.Cut(s, ",")
	if !found {
		return Slope{}, fmt.Errorf("slope %q: want right,down", s)
	}
	r, err := input.Int(right)
	if err != nil {
		return Slope{}, err
	}
	d, err := input.Int(down)
	if err != nil {
		return Slope{}, err
	}
	return Slope{Right: r, Down: d}, nil
}

// parseHill turns ./# rows into a tree bitmap.
func parseHill(lines []string) ([][]bool, error) {
	return input.ParseLines(lines, func(line string) ([]bool, error) {
		row := make([]bool, 0, len(line))
		for _, c := range line {
			switch c {
			case '.':
				row = append(row, false)
			case '#':
				row = append(row, true)
			default:
				return nil, fmt.Errorf("unknown terrain %q", c)
			}
		}
		return row, nil
	})
}

// treesOnSlope rides one slope down the hill, wrapping horizontally, and
// counts the trees hit.
func treesOnSlope(hill [][]bool, slope Slope) int {
	if len(hill) == 0 {
		return 0
	}
	width := len(hill[0])
	x, y, trees := 0, 0, 0
	for {
		x = (x + slope.Right) % width
		y += slope.Down
		if y >= len(hill) {
			return trees
		}
		if hill[y][x] {
			trees++
		}
	}
}

func treeProduct(hill [][]bool, slopes []Slope) int {
	product := 1
	for _, slope := range slopes {
		product *= treesOnSlope(hill, slope)
	}
	return product
}

func tobogganRun(file string, slopes []Slope) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	hill, err := parseHill(lines)
	if err != nil {
		return 0, err
	}
	return treeProduct(hill, slopes), nil
}

func TobogganTrajectory() runner.Day {
	day := runner.Day{
		Name:    "toboggan-trajectory",
		Number:  3,
		Summary: "Product of the trees a toboggan hits on each slope of a hill",
	}
	part2Slopes := []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Rides the default input with a single slope of 3,1",
			Run: func(rt *runner.Runtime) (int, error) {
				return tobogganRun(rt.Config.DayInput(day.Number), []Slope{{3, 1}})
			},
		},
		{
			Name:    "part2",
			Summary: "Rides the default input with slopes 1,1 3,1 5,1 7,1 1,2",
			Run: func(rt *runner.Runtime) (int, error) {
				return tobogganRun(rt.Config.DayInput(day.Number), part2Slopes)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		var rawSlopes []string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nInput is a hill with . denoting clear ground " +
				"and # denoting a tree, one row per line.",
			RunE: func(cmd *cobra.Command, args []string) error {
				slopes := make([]Slope, 0, len(rawSlopes))
				for _, raw := range rawSlopes {
					slope, err := parseSlope(raw)
					if err != nil {
						return err
					}
					slopes = append(slopes, slope)
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return tobogganRun(file, slopes)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringSliceVarP(&rawSlopes, "slope", "s", []string{"3,1"},
			"slope as right,down; repeatable")
		_ = cmd.MarkFlagRequired("file")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
