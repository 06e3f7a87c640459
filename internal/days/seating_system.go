package days

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// Tile is one cell of the seating grid.
type Tile int8

const (
	Floor Tile = iota
	EmptySeat
	OccupiedSeat
)

// Adjacency defines which seats count as neighbours of a seat.
type Adjacency int

const (
	// DirectlyNextTo considers the eight surrounding tiles.
	DirectlyNextTo Adjacency = iota
	// LineOfSight considers the first seat visible in each of the eight
	// directions.
	LineOfSight
)

func parseAdjacency(s string) (Adjacency, error) {
	switch s {
	case "directly-next-to":
		return DirectlyNextTo, nil
	case "line-of-sight":
		return LineOfSight, nil
	}
	return 0, fmt.Errorf("unknown adjacency %q: want directly-next-to or line-of-sight", s)
}

func parseSeatingGrid(lines []string) ([][]Tile, error) {
	return input.ParseLines(lines, func(line string) ([]Tile, error) {
		row := make([]Tile, 0, len(line))
		for _, c := range line {
			switch c {
			case '.':
				row = append(row, Floor)
			case 'L':
				row = append(row, EmptySeat)
			case '#':
				row = append(row, OccupiedSeat)
			default:
				return nil, fmt.Errorf("unknown tile %q", c)
			}
		}
		return row, nil
	})
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// occupiedNeighbours counts occupied seats around (y, x) under the given
// adjacency. Line-of-sight skips floor tiles until it finds a seat or
// leaves the grid.
func occupiedNeighbours(grid [][]Tile, y, x int, adjacency Adjacency) int {
	occupied := 0
	for _, d := range directions {
		ny, nx := y+d[0], x+d[1]
		for ny >= 0 && ny < len(grid) && nx >= 0 && nx < len(grid[ny]) {
			tile := grid[ny][nx]
			if tile == OccupiedSeat {
				occupied++
			}
			if tile != Floor || adjacency == DirectlyNextTo {
				break
			}
			ny += d[0]
			nx += d[1]
		}
	}
	return occupied
}

// stepSeating applies one round of the seating rules and reports whether
// anything changed.
func stepSeating(grid [][]Tile, tolerance int, adjacency Adjacency) ([][]Tile, bool) {
	next := make([][]Tile, len(grid))
	changed := false
	for y, row := range grid {
		next[y] = make([]Tile, len(row))
		for x, tile := range row {
			next[y][x] = tile
			switch tile {
			case EmptySeat:
				if occupiedNeighbours(grid, y, x, adjacency) == 0 {
					next[y][x] = OccupiedSeat
					changed = true
				}
			case OccupiedSeat:
				if occupiedNeighbours(grid, y, x, adjacency) >= tolerance {
					next[y][x] = EmptySeat
					changed = true
				}
			}
		}
	}
	return next, changed
}

// settleSeating iterates rounds until the arrangement stops changing and
// returns the number of occupied seats at the fixpoint.
func settleSeating(grid [][]Tile, tolerance int, adjacency Adjacency) int {
	for {
		next, changed := stepSeating(grid, tolerance, adjacency)
		if !changed {
			break
		}
		grid = next
	}
	occupied := 0
	for _, row := range grid {
		for _, tile := range row {
			if tile == OccupiedSeat {
				occupied++
			}
		}
	}
	return occupied
}

func seatingRun(file string, tolerance int, adjacency Adjacency) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	grid, err := parseSeatingGrid(lines)
	if err != nil {
		return 0, err
	}
	return settleSeating(grid, tolerance, adjacency), nil
}

func SeatingSystem() runner.Day {
	day := runner.Day{
		Name:    "seating-system",
		Number:  11,
		Summary: "Occupied seats once the ferry seating reaches equilibrium",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Settles the default input with tolerance 4 and direct adjacency",
			Run: func(rt *runner.Runtime) (int, error) {
				return seatingRun(rt.Config.DayInput(day.Number), 4, DirectlyNextTo)
			},
		},
		{
			Name:    "part2",
			Summary: "Settles the default input with tolerance 5 and line-of-sight adjacency",
			Run: func(rt *runner.Runtime) (int, error) {
				return seatingRun(rt.Config.DayInput(day.Number), 5, LineOfSight)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, adjacencyName string
		var tolerance int
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nInput is a grid of . (floor), L (empty seat) " +
				"and # (occupied seat), one row per line.",
			RunE: func(cmd *cobra.Command, args []string) error {
				adjacency, err := parseAdjacency(adjacencyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return seatingRun(file, tolerance, adjacency)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().IntVarP(&tolerance, "tolerance", "t", 0,
			"occupied neighbours a person tolerates before leaving")
		cmd.Flags().StringVarP(&adjacencyName, "adjacency", "a", "",
			"neighbour definition: directly-next-to or line-of-sight")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("tolerance")
		_ = cmd.MarkFlagRequired("adjacency")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
