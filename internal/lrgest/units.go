package lrgest

import "fmt"

// Unit is a binary size unit.
type Unit int

// Units in increasing magnitude. TB is the largest; values beyond it stay in TB.
const (
	B Unit = iota
	KB
	MB
	GB
	TB
)

// unitStep is the factor between consecutive units.
const unitStep = 1024

func (u Unit) String() string {
	switch u {
	case B:
		return "B"
	case KB:
		return "KB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	case TB:
		return "TB"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Emphasis is how strongly a size should be highlighted.
type Emphasis int

const (
	// Plain sizes are not highlighted.
	Plain Emphasis = iota
	// Warning marks gigabyte sizes.
	Warning
	// Danger marks terabyte sizes.
	Danger
)

// Emphasis returns the highlight level of sizes expressed in u.
func (u Unit) Emphasis() Emphasis {
	switch u {
	case GB:
		return Warning
	case TB:
		return Danger
	default:
		return Plain
	}
}

// Size is a byte count scaled to a Unit.
type Size struct {
	Value float64
	Unit  Unit
}

// HumanSize scales bytes by 1024 while the value exceeds 1024, up to TB.
// Exactly 1024 stays in the lower unit.
func HumanSize(bytes uint64) Size {
	size := Size{Value: float64(bytes), Unit: B}

	for size.Value > unitStep && size.Unit < TB {
		size.Value /= unitStep
		size.Unit++
	}

	return size
}

// String formats the size with two decimals and the unit suffix, e.g. "4.77MB".
func (s Size) String() string {
	return fmt.Sprintf("%.2f%s", s.Value, s.Unit)
}

// Emphasis returns the highlight level of the size.
func (s Size) Emphasis() Emphasis {
	return s.Unit.Emphasis()
}
