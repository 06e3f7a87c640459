// Package sumcheck implements a duplicate-aware search for a fixed-size
// sub-multiset of integers that sums to a target.
package sumcheck

// Checker holds a multiset of integers as a value→count map plus the set
// of distinct values. A value is present in distinct iff its count is
// positive.
type Checker struct {
	counts   map[int]int
	distinct map[int]struct{}
}

func New() *Checker {
	return &Checker{
		counts:   make(map[int]int),
		distinct: make(map[int]struct{}),
	}
}

// FromSlice builds a Checker holding every value in numbers, keeping
// multiplicities.
func FromSlice(numbers []int) *Checker {
	c := New()
	for _, n := range numbers {
		c.Add(n)
	}
	return c
}

// Add inserts one occurrence of value.
func (c *Checker) Add(value int) {
	c.distinct[value] = struct{}{}
	c.counts[value]++
}

// Remove drops one occurrence of value. Removing an absent value is a
// no-op.
func (c *Checker) Remove(value int) {
	switch c.counts[value] {
	case 0:
	case 1:
		delete(c.counts, value)
		delete(c.distinct, value)
	default:
		c.counts[value]--
	}
}

// Count reports how many occurrences of value are held.
func (c *Checker) Count(value int) int {
	return c.counts[value]
}

// FindSumOfN searches for exactly n held numbers summing to target,
// respecting multiplicities: a value occurring k times may appear at most
// k times in the result. Returns the combination and true, or nil and
// false when no combination exists. The search is a plain recursive scan,
// exponential in n, which is fine at the input sizes this tool sees.
func (c *Checker) FindSumOfN(target, n int) ([]int, bool) {
	if n < 2 {
		return nil, false
	}
	if n == 2 {
		return c.findPair(target)
	}
	for value := range c.distinct {
		found, ok := c.FindSumOfN(target-value, n-1)
		if !ok {
			continue
		}
		used := 0
		for _, v := range found {
			if v == value {
				used++
			}
		}
		if used+1 > c.counts[value] {
			continue
		}
		return append(found, value), true
	}
	return nil, false
}

func (c *Checker) findPair(target int) ([]int, bool) {
	for value := range c.distinct {
		other := target - value
		count, present := c.counts[other]
		if !present {
			continue
		}
		if other == value && count < 2 {
			continue
		}
		return []int{other, value}, true
	}
	return nil, false
}
