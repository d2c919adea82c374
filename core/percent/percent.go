// Package percent implements a small type for percentage values, used for
// shading calendar cells and for reporting painting progress.
package percent

import (
	"math"
	"strconv"
)

// Percent is a percentage value between 0 and 100.
type Percent uint8

// FromInt clamps n to [0…100].
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat rounds and clamps f to [0…100].
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// Of returns the share of part in total. A total of zero or less yields 0%.
func Of(part, total int) Percent {
	if total <= 0 {
		return 0
	}
	return FromFloat(100 * float64(part) / float64(total))
}

// Level maps p onto one of levels buckets 1…levels. 0% is level 0, any
// other value is at least level 1 and 100% is the highest level.
func (p Percent) Level(levels int) int {
	if p == 0 || levels <= 0 {
		return 0
	}
	l := (int(p)*levels + 99) / 100
	if l > levels {
		l = levels
	}
	return l
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
