package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktsimpso/adventofcode2020/internal/input"
)

var sampleSackRules = []string{
	"light red bags contain 1 bright white bag, 2 muted yellow bags.",
	"dark orange bags contain 3 bright white bags, 4 muted yellow bags.",
	"bright white bags contain 1 shiny gold bag.",
	"muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.",
	"shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.",
	"dark olive bags contain 3 faded blue bags, 4 dotted black bags.",
	"vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.",
	"faded blue bags contain no other bags.",
	"dotted black bags contain no other bags.",
}

func parseSampleRules(t *testing.T, lines []string) []sackRule {
	t.Helper()
	rules, err := input.ParseLines(lines, parseSackRule)
	require.NoError(t, err)
	return rules
}

func TestParseSackRule(t *testing.T) {
	rule, err := parseSackRule(sampleSackRules[0])
	require.NoError(t, err)
	assert.Equal(t, "light red", rule.name)
	assert.Equal(t, map[string]int{"bright white": 1, "muted yellow": 2}, rule.contains)

	empty, err := parseSackRule("faded blue bags contain no other bags.")
	require.NoError(t, err)
	assert.Equal(t, "faded blue", empty.name)
	assert.Empty(t, empty.contains)
}

func TestParseSackRule_Rejects(t *testing.T) {
	for _, bad := range []string{
		"",
		"light red bags hold 1 bright white bag.",
		"light red bags contain one bright white bag.",
	} {
		_, err := parseSackRule(bad)
		assert.Error(t, err, "line %q", bad)
	}
}

func TestCountContainingSacks(t *testing.T) {
	rules := parseSampleRules(t, sampleSackRules)
	assert.Equal(t, 4, countContainingSacks(rules, "shiny gold"))
}

func TestCountContainedSacks(t *testing.T) {
	rules := parseSampleRules(t, sampleSackRules)
	assert.Equal(t, 32, countContainedSacks(rules, "shiny gold"))
}

func TestCountContainedSacks_DeepChain(t *testing.T) {
	rules := parseSampleRules(t, []string{
		"shiny gold bags contain 2 dark red bags.",
		"dark red bags contain 2 dark orange bags.",
		"dark orange bags contain 2 dark yellow bags.",
		"dark yellow bags contain 2 dark green bags.",
		"dark green bags contain 2 dark blue bags.",
		"dark blue bags contain 2 dark violet bags.",
		"dark violet bags contain no other bags.",
	})
	assert.Equal(t, 126, countContainedSacks(rules, "shiny gold"))
}

func TestCountContainingSacks_UnknownTarget(t *testing.T) {
	rules := parseSampleRules(t, sampleSackRules)
	assert.Equal(t, 0, countContainingSacks(rules, "plaid magenta"))
}
