package days

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// SackStrategy selects which fact about the bag graph to compute.
type SackStrategy int

const (
	// CountContaining counts distinct outer bags that can eventually hold
	// the target.
	CountContaining SackStrategy = iota
	// CountContained totals the bags required inside the target.
	CountContained
)

func parseSackStrategy(s string) (SackStrategy, error) {
	switch s {
	case "count-containing":
		return CountContaining, nil
	case "count-contained":
		return CountContained, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: want count-containing or count-contained", s)
}

type sackRule struct {
	name     string
	contains map[string]int
}

// parseSackRule parses lines like
// "light red bags contain 1 bright white bag, 2 muted yellow bags."
// and "faded blue bags contain no other bags."
func parseSackRule(line string) (sackRule, error) {
	head, tail, found := strings.Cut(line, " bags contain ")
	if !found {
		return sackRule{}, fmt.Errorf("malformed bag rule %q", line)
	}
	rule := sackRule{name: head, contains: map[string]int{}}

	tail = strings.TrimSuffix(tail, ".")
	if tail == "no other bags" {
		return rule, nil
	}
	for _, entry := range strings.Split(tail, ", ") {
		entry = strings.TrimSuffix(entry, " bags")
		entry = strings.TrimSuffix(entry, " bag")
		countText, name, found := strings.Cut(entry, " ")
		if !found {
			return sackRule{}, fmt.Errorf("malformed bag entry %q in %q", entry, line)
		}
		count, err := input.Int(countText)
		if err != nil {
			return sackRule{}, fmt.Errorf("bag entry %q: %w", entry, err)
		}
		rule.contains[name] = count
	}
	return rule, nil
}

// countContainingSacks walks the reversed containment graph breadth-first
// from the target and counts every reachable outer bag.
func countContainingSacks(rules []sackRule, target string) int {
	reverse := map[string][]string{}
	for _, rule := range rules {
		for child := range rule.contains {
			reverse[child] = append(reverse[child], rule.name)
		}
	}

	parents := map[string]bool{}
	queue := []string{target}
	for len(queue) > 0 {
		next := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, parent := range reverse[next] {
			if !parents[parent] {
				parents[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return len(parents)
}

// countContainedSacks totals the bags that must be packed inside target,
// multiplying counts down the containment tree.
func countContainedSacks(rules []sackRule, target string) int {
	contents := make(map[string]map[string]int, len(rules))
	for _, rule := range rules {
		contents[rule.name] = rule.contains
	}

	var total func(name string) int
	total = func(name string) int {
		sum := 0
		for child, count := range contents[name] {
			sum += count * (1 + total(child))
		}
		return sum
	}
	return total(target)
}

func haversackRun(file, sack string, strategy SackStrategy) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	rules, err := input.ParseLines(lines, parseSackRule)
	if err != nil {
		return 0, err
	}
	switch strategy {
	case CountContained:
		return countContainedSacks(rules, sack), nil
	default:
		return countContainingSacks(rules, sack), nil
	}
}

func HandyHaversacks() runner.Day {
	day := runner.Day{
		Name:    "handy-haversacks",
		Number:  7,
		Summary: "Facts about a graph of bags containing bags",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Counts bags that can eventually contain a shiny gold bag",
			Run: func(rt *runner.Runtime) (int, error) {
				return haversackRun(rt.Config.DayInput(day.Number), "shiny gold", CountContaining)
			},
		},
		{
			Name:    "part2",
			Summary: "Counts the bags required inside a shiny gold bag",
			Run: func(rt *runner.Runtime) (int, error) {
				return haversackRun(rt.Config.DayInput(day.Number), "shiny gold", CountContained)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, sack, strategyName string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long:  day.Summary + ".\n\nEach line holds the containment rule for one bag.",
			RunE: func(cmd *cobra.Command, args []string) error {
				strategy, err := parseSackStrategy(strategyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return haversackRun(file, sack, strategy)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringVarP(&sack, "sack", "s", "", "name of the bag to find stats on")
		cmd.Flags().StringVar(&strategyName, "strategy", "count-containing",
			"stat to compute: count-containing or count-contained")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("sack")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
