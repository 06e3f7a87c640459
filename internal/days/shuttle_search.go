package days

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

type busSchedule struct {
	departTime int
	// routes holds the bus ids in service; out-of-service x entries are
	// dropped at parse time.
	routes []int
}

func parseBusSchedule(lines []string) (busSchedule, error) {
	if len(lines) < 2 {
		return busSchedule{}, fmt.Errorf("schedule needs a depart time line and a routes line")
	}
	departTime, err := input.Int(lines[0])
	if err != nil {
		return busSchedule{}, err
	}
	schedule := busSchedule{departTime: departTime}
	for _, entry := range strings.Split(lines[1], ",") {
		if entry == "x" {
			continue
		}
		bus, err := input.Int(entry)
		if err != nil {
			return busSchedule{}, fmt.Errorf("bus route: %w", err)
		}
		schedule.routes = append(schedule.routes, bus)
	}
	if len(schedule.routes) == 0 {
		return busSchedule{}, fmt.Errorf("no bus routes in service")
	}
	return schedule, nil
}

// nextBus returns the id of the first bus departing at or after the
// target time along with its wait.
func nextBus(schedule busSchedule) (bus, wait int) {
	bestBus, bestWait := 0, -1
	for _, route := range schedule.routes {
		w := (route - schedule.departTime%route) % route
		if bestWait < 0 || w < bestWait {
			bestBus, bestWait = route, w
		}
	}
	return bestBus, bestWait
}

func shuttleRun(file string) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	schedule, err := parseBusSchedule(lines)
	if err != nil {
		return 0, err
	}
	bus, wait := nextBus(schedule)
	return bus * wait, nil
}

func ShuttleSearch() runner.Day {
	day := runner.Day{
		Name:    "shuttle-search",
		Number:  13,
		Summary: "Wait time for the next shuttle multiplied by its bus id",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Finds the next bus in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return shuttleRun(rt.Config.DayInput(day.Number))
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nFirst input line is the earliest departure " +
				"time; second is the comma-separated bus schedule with x for " +
				"routes out of service.",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runner.Solve(rt, day.Name, func() (int, error) {
					return shuttleRun(file)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		_ = cmd.MarkFlagRequired("file")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
