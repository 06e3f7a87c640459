package days

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsimpso/adventofcode2020/internal/input"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
)

// passport is a free-form field bag; cid is carried but never required.
type passport map[string]string

var passportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid", "cid"}

// parsePassports splits blank-line separated records into field maps.
// Fields are key:value pairs separated by spaces or newlines.
func parsePassports(groups [][]string) ([]passport, error) {
	passports := make([]passport, 0, len(groups))
	for _, group := range groups {
		p := passport{}
		for _, line := range group {
			for _, field := range strings.Fields(line) {
				key, value, found := strings.Cut(field, ":")
				if !found {
					return nil, fmt.Errorf("malformed passport field %q", field)
				}
				if knownPassportField(key) {
					p[key] = value
				}
			}
		}
		passports = append(passports, p)
	}
	return passports, nil
}

func knownPassportField(key string) bool {
	for _, field := range passportFields {
		if key == field {
			return true
		}
	}
	return false
}

// complete reports whether all mandatory fields are present.
func (p passport) complete() bool {
	for _, field := range passportFields {
		if field == "cid" {
			continue
		}
		if _, ok := p[field]; !ok {
			return false
		}
	}
	return true
}

var (
	hairColorPattern  = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportIDPattern = regexp.MustCompile(`^[0-9]{9}$`)
	eyeColors         = map[string]bool{
		"amb": true, "blu": true, "brn": true,
		"gry": true, "grn": true, "hzl": true, "oth": true,
	}
)

// strictValid additionally checks every field value against its rules.
func (p passport) strictValid() bool {
	if !p.complete() {
		return false
	}
	return yearInRange(p["byr"], 1920, 2002) &&
		yearInRange(p["iyr"], 2010, 2020) &&
		yearInRange(p["eyr"], 2020, 2030) &&
		heightValid(p["hgt"]) &&
		hairColorPattern.MatchString(p["hcl"]) &&
		eyeColors[p["ecl"]] &&
		passportIDPattern.MatchString(p["pid"])
}

func yearInRange(s string, low, high int) bool {
	if len(s) != 4 {
		return false
	}
	year, err := strconv.Atoi(s)
	return err == nil && year >= low && year <= high
}

func heightValid(s string) bool {
	if value, ok := strings.CutSuffix(s, "cm"); ok {
		cm, err := strconv.Atoi(value)
		return err == nil && cm >= 150 && cm <= 193
	}
	if value, ok := strings.CutSuffix(s, "in"); ok {
		in, err := strconv.Atoi(value)
		return err == nil && in >= 59 && in <= 76
	}
	return false
}

func countValidPassports(passports []passport, strict bool) int {
	valid := 0
	for _, p := range passports {
		if strict && p.strictValid() || !strict && p.complete() {
			valid++
		}
	}
	return valid
}

func passportRun(file string, strict bool) (int, error) {
	groups, err := input.Groups(file)
	if err != nil {
		return 0, err
	}
	passports, err := parsePassports(groups)
	if err != nil {
		return 0, err
	}
	return countValidPassports(passports, strict), nil
}

func PassportProcessing() runner.Day {
	day := runner.Day{
		Name:    "passport-processing",
		Number:  4,
		Summary: "Number of passports in the batch file that validate",
	}
	day.Parts = []runner.Part{
		{
			Name:    "part1",
			Summary: "Counts passports with all mandatory fields in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return passportRun(rt.Config.DayInput(day.Number), false)
			},
		},
		{
			Name:    "part2",
			Summary: "Counts passports whose field values also validate in the default input",
			Run: func(rt *runner.Runtime) (int, error) {
				return passportRun(rt.Config.DayInput(day.Number), true)
			},
		},
	}
	day.New = func(rt *runner.Runtime) *cobra.Command {
		var file string
		var strict bool
		cmd := &cobra.Command{
			Use:   day.Name,
			Short: day.Summary,
			Long: day.Summary + ".\n\nPassports are separated by blank lines; " +
				"fields are key:value pairs separated by spaces or newlines.",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runner.Solve(rt, day.Name, func() (int, error) {
					return passportRun(file, strict)
				})
			},
		}
		cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input file")
		cmd.Flags().BoolVarP(&strict, "strict", "s", false,
			"also validate field values, not just presence")
		_ = cmd.MarkFlagRequired("file")
		cmd.AddCommand(runner.PartCommands(rt, day)...)
		return cmd
	}
	return day
}
