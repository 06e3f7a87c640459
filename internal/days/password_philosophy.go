package days

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// PasswordPolicy selects how the two numbers in a password rule are
// interpreted.
type PasswordPolicy int

const (
	// RequiredCount treats them as min/max occurrences of the character.
	RequiredCount PasswordPolicy = iota
	// RequiredPositions treats them as 1-based indexes, exactly one of
	// which must hold the character.
	RequiredPositions
)

func parsePasswordPolicy(s string) (PasswordPolicy, error) {
	switch s {
	case "required-count":
		return RequiredCount, nil
	case "required-positions":
		return RequiredPositions, nil
	}
	return 0, fmt.Errorf("unknown policy %q: want required-count or required-positions", s)
}

type passwordLine struct {
	first     int
	second    int
	character byte
	password  string
}

// parsePasswordLine parses "1-3 a: abcde".
func parsePasswordLine(line string) (passwordLine, error) {
	rule, password, found := strings.Cut(line, ": ")
	if !found {
		return passwordLine{}, fmt.Errorf("malformed password line %q", line)
	}
	bounds, character, found := strings.Cut(rule, " ")
	if !found || len(character) != 1 {
		return passwordLine{}, fmt.Errorf("malformed rule %q", rule)
	}
	low, high, found := strings.Cut(bounds, "-")
	if !found {
		return passwordLine{}, fmt.Errorf("malformed bounds %q", bounds)
	}
	first, err := input.Int(low)
	if err != nil {
		return passwordLine{}, err
	}
	second, err := input.Int(high)
	if err != nil {
		return passwordLine{}, err
	}
	return passwordLine{
		first:     first,
		second:    second,
		character: character[0],
		password:  password,
	}, nil
}

func (p passwordLine) validCount() bool {
	instances := strings.Count(p.password, string(p.character))
	return instances >= p.first && instances <= p.second
}

func (p passwordLine) validPositions() bool {
	matches := 0
	for i := 0; i < len(p.password); i++ {
		oneIndex := i + 1
		if (oneIndex == p.first || oneIndex == p.second) && p.password[i] == p.character {
			matches++
		}
	}
	return matches == 1
}

func countValidPasswords(lines []passwordLine, policy PasswordPolicy) int {
	valid := 0
	for _, line := range lines {
		switch policy {
		case RequiredCount:
			if line.validCount() {
				valid++
			}
		case RequiredPositions:
			if line.validPositions() {
				valid++
			}
		}
	}
	return valid
}

func passwordRun(file string, policy PasswordPolicy) (int, error) {
	lines, err := input.Lines(file)
	if err != nil {
		return 0, err
	}
	parsed, err := input.ParseLines(lines, parsePasswordLine)
	if err != nil {
		return 0, err
	}
	return countValidPasswords(parsed, policy), nil
}

func PasswordPhilosophy() runner.Day {
	day := runner.Day{
		Name:    "password-philosophy",
		Number:  2,
		Summary: "Number of passwords that satisfy their attached policy",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Validates the default input with the required-count policy",
			Run: func(rt *runner.Runtime) (int, error) {
				return passwordRun(rt.Config.DayInput(day.Number), RequiredCount)
			},
		},
		{
			Name:    "part2",
			Summary: "Validates the default input with the required-positions policy",
			Run: func(rt *runner.Runtime) (int, error) {
				return passwordRun(rt.Config.DayInput(day.Number), RequiredPositions)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file, policyName string
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nEach line has the form " +
				"{int}-{int} {character}: {password}.",
			RunE: func(cmd *cobra.Command, args []string) error {
				policy, err := parsePasswordPolicy(policyName)
				if err != nil {
					return err
				}
				return runner.Solve(rt, day.Name, func() (int, error) {
					return passwordRun(file, policy)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().StringVarP(&policyName, "policy", "p", "",
			"password policy: required-count or required-positions")
		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("policy")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
