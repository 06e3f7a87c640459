package days

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// CustomsStrategy selects how a group's answers are combined.
type CustomsStrategy int

const (
	CountUniquePerGroup CustomsStrategy = iota
	CountIntersectionPerGroup
)

func parseCustomsStrategy(s string) (CustomsStrategy, error) {
	switch s {
	case "count-unique-per-group":
		return CountUniquePerGroup, nil
	case "count-intersection-per-group":
		return CountIntersectionPerGroup, nil
	}
	return 0, fmt.Errorf(
		"unknown strategy %q: want count-unique-per-group or count-intersection-per-group", s)
}

// answerSets turns each person's line into the set of questions answered.
func answerSets(group []string) []map[rune]bool {
	people := make([]map[rune]bool, 0, len(group))
	for _, line := range group {
		answers := make(map[rune]bool, len(line))
		for _, question := range line {
			answers[question] = true
		}
		people = append(people, answers)
	}
	return people
}

func uniqueAnswers(people []map[rune]bool) int {
	union := map[rune]bool{}
	for _, person := range people {
		for question := range person {
			union[question] = true
		}
	}
	return len(union)
}

func commonAnswers(people []map[rune]bool) int {
	if len(people) == 0 {
		return 0
	}
	common := 0
	for question := range people[0] {
		answeredByAll := true
		for _, person := range people[1:] {
			if !person[question] {
				answeredByAll = false
				break
			}
		}
		if answeredByAll {
			common++
		}
	}
	return common
}

func sumGroupAnswers(groups [][]string, strategy CustomsStrategy) int {
	total := 0
	for _, group := range groups {
		people := answerSets(group)
		switch strategy {
		case CountIntersectionPerGroup:
			total += commonAnswers(people)
		default:
			total += uniqueAnswers(people)
		}
	}
	return total
}

func customsRun(file string, strategy CustomsStrategy) (int, error) {
	groups, err := input.Groups(file)
	if err != nil {
		return 0, err
	}
	return sumGroupAnswers(groups, strategy), nil
}

func CustomCustoms() runner.Day {
	day := runner.Day{
		Name:    "custom-customs",
		Number:  6,
		Summary: "Sum over groups of customs questions answered yes",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Sums the unique answers per group in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return customsRun(rt.Config.DayInput(day.Number), CountUniquePerGroup)
			},
		},
		{
			Name:    "part2",
			Summary: "Sums the answers every group member gave in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return customsRun(rt.Config.DayInput(day.Number), CountIntersectionPerGroup)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, strategyName string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nGroups are separated by blank lines; " +
				"each line within a group is one person's answers.",
			RunE: func(cmd *cobra.Command, args []string) error {
				strategy, err := parseCustomsStrategy(strategyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return customsRun(file, strategy)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringVarP(&strategyName, "strategy", "s", "",
			"counting strategy: count-unique-per-group or count-intersection-per-group")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("strategy")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
