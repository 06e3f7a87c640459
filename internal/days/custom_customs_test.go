package days

import (
	"testing"

	"github.com/ktsimpso/adventofcode2020/internal/input"
)

var sampleCustomsLines = []string{
	"abc",
	"",
	"a",
	"b",
	"c",
	"",
	"ab",
	"ac",
	"",
	"a",
	"a",
	"a",
	"a",
	"",
	"b",
}

func TestSumGroupAnswers(t *testing.T) {
	groups := input.SplitGroups(sampleCustomsLines)

	if got := sumGroupAnswers(groups, CountUniquePerGroup); got != 11 {
		t.Errorf("count-unique-per-group = %d, want 11", got)
	}
	if got := sumGroupAnswers(groups, CountIntersectionPerGroup); got != 6 {
		t.Errorf("count-intersection-per-group = %d, want 6", got)
	}
}

func TestCommonAnswers_EmptyGroup(t *testing.T) {
	if got := commonAnswers(nil); got != 0 {
		t.Fatalf("commonAnswers(nil) = %d, want 0", got)
	}
}

func TestParseCustomsStrategy(t *testing.T) {
	if _, err := parseCustomsStrategy("count-unique-per-group"); err != nil {
		t.Errorf("count-unique-per-group rejected: %v", err)
	}
	if _, err := parseCustomsStrategy("count-intersection-per-group"); err != nil {
		t.Errorf("count-intersection-per-group rejected: %v", err)
	}
	if _, err := parseCustomsStrategy("bogus"); err == nil {
		t.Error("unknown strategy accepted")
	}
}
