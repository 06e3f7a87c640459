package days

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// DirectionStrategy selects how navigation instructions move the ship.
type DirectionStrategy int

const (
	// RelativeDirections move and turn the ship itself.
	RelativeDirections DirectionStrategy = iota
	// WaypointDirections move a waypoint the ship steers towards.
	WaypointDirections
)

func parseDirectionStrategy(s string) (DirectionStrategy, error) {
	switch s {
	case "relative":
		return RelativeDirections, nil
	case "waypoint":
		return WaypointDirections, nil
	}
	return 0, fmt.Errorf("unknown direction strategy %q: want relative or waypoint", s)
}

type navAction int

const (
	actNorth navAction = iota
	actEast
	actSouth
	actWest
	actLeft
	actRight
	actForward
)

type navInstruction struct {
	action navAction
	value  int
}

func parseNavInstruction(line string) (navInstruction, error) {
	if len(line) < 2 {
		return navInstruction{}, fmt.Errorf("malformed direction %q", line)
	}
	value, err := input.Int(line[1:])
	if err != nil {
		return navInstruction{}, err
	}
	var action navAction
	switch line[0] {
	case 'N':
		action = actNorth
	case 'E':
		action = actEast
	case 'S':
		action = actSouth
	case 'W':
		action = actWest
	case 'L':
		action = actLeft
	case 'R':
		action = actRight
	case 'F':
		action = actForward
	default:
		return navInstruction{}, fmt.Errorf("unknown direction %q", line[0])
	}
	if (action == actLeft || action == actRight) && (value < 0 || value%90 != 0) {
		return navInstruction{}, fmt.Errorf("turn %q: want a non-negative multiple of 90", line)
	}
	return navInstruction{action: action, value: value}, nil
}

// sailRelative interprets instructions as moves and turns of the ship,
// starting facing east. Returns (north, east) displacement.
func sailRelative(instructions []navInstruction) (int, int) {
	north, east := 0, 0
	// headings in clockwise order: N, E, S, W
	heading := 1
	for _, instruction := range instructions {
		switch instruction.action {
		case actNorth:
			north += instruction.value
		case actEast:
			east += instruction.value
		case actSouth:
			north -= instruction.value
		case actWest:
			east -= instruction.value
		case actRight:
			heading = (heading + instruction.value/90) % 4
		case actLeft:
			heading = ((heading-instruction.value/90)%4 + 4) % 4
		case actForward:
			switch heading {
			case 0:
				north += instruction.value
			case 1:
				east += instruction.value
			case 2:
				north -= instruction.value
			case 3:
				east -= instruction.value
			}
		}
	}
	return north, east
}

// sailWaypoint interprets instructions against a waypoint starting 1
// north, 10 east of the ship. Returns (north, east) displacement of the
// ship.
func sailWaypoint(instructions []navInstruction) (int, int) {
	north, east := 0, 0
	wpNorth, wpEast := 1, 10
	for _, instruction := range instructions {
		switch instruction.action {
		case actNorth:
			wpNorth += instruction.value
		case actEast:
			wpEast += instruction.value
		case actSouth:
			wpNorth -= instruction.value
		case actWest:
			wpEast -= instruction.value
		case actRight:
			for i := 0; i < instruction.value/90; i++ {
				wpNorth, wpEast = -wpEast, wpNorth
			}
		case actLeft:
			for i := 0; i < instruction.value/90; i++ {
				wpNorth, wpEast = wpEast, -wpNorth
			}
		case actForward:
			north += wpNorth * instruction.value
			east += wpEast * instruction.value
		}
	}
	return north, east
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rainRiskRun(file string, strategy DirectionStrategy) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	instructions, err := input.ParseLines(lines, parseNavInstruction)
	if err != nil {
		return 0, err
	}
	var north, east int
	switch strategy {
	case WaypointDirections:
		north, east = sailWaypoint(instructions)
	default:
		north, east = sailRelative(instructions)
	}
	return abs(north) + abs(east), nil
}

func RainRisk() runner.Day {
	day := runner.Day{
		Name:    "rain-risk",
		Number:  12,
		Summary: "Manhattan distance a ferry travels under navigation instructions",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Sails the default input with ship-relative directions",
			Run: func(rt *runner.Runtime) (int, error) {
				return rainRiskRun(rt.Config.DayInput(day.Number), RelativeDirections)
			},
		},
		{
			Name:    "part2",
			Summary: "Sails the default input with waypoint directions",
			Run: func(rt *runner.Runtime) (int, error) {
				return rainRiskRun(rt.Config.DayInput(day.Number), WaypointDirections)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, strategyName string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nEach line is one instruction: an action " +
				"N/E/S/W/L/R/F followed by a value.",
			RunE: func(cmd *cobra.Command, args []string) error {
				strategy, err := parseDirectionStrategy(strategyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return rainRiskRun(file, strategy)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringVarP(&strategyName, "direction-strategy", "d", "",
			"how to interpret directions: relative or waypoint")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("direction-strategy")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
