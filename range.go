package months

import (
	"fmt"
	"iter"
	"slices"
)

// Range is a strict span of months: its first endpoint is always strictly
// before its last, so a Range holds at least two months.
type Range struct {
	first, last Month
	months      []Month
}

var _ Span = Range{}

// NewRange returns the range from first to last inclusive. It fails with
// [ErrInvalidRange] unless first is strictly before last.
func NewRange(first, last Month) (Range, error) {
	if !first.Before(last) {
		return Range{}, fmt.Errorf("%w: %s is not before %s", ErrInvalidRange, first, last)
	}
	return Range{first: first, last: last, months: EnumerateMonths(first, last)}, nil
}

// RangeOf returns the range between the months containing first and last.
func RangeOf(first, last YearMonther) (Range, error) {
	a, err := New(first.Year(), first.Month())
	if err != nil {
		return Range{}, err
	}
	b, err := New(last.Year(), last.Month())
	if err != nil {
		return Range{}, err
	}
	return NewRange(a, b)
}

// ParseRange parses the YYYY-MM/YYYY-MM form produced by [Range.String].
func ParseRange(s string) (Range, error) {
	a, b, err := parseSpan(s)
	if err != nil {
		return Range{}, err
	}
	return NewRange(a, b)
}

// First returns the earliest month.
func (r Range) First() Month { return r.first }

// Last returns the latest month.
func (r Range) Last() Month { return r.last }

// Months returns a copy of the range's months in ascending order.
func (r Range) Months() []Month { return slices.Clone(r.months) }

// Len returns the number of months in r.
func (r Range) Len() int { return len(r.months) }

// All iterates over the months of r in ascending order.
func (r Range) All() iter.Seq[Month] {
	return slices.Values(r.months)
}

// Contains reports whether the month containing v lies in r.
func (r Range) Contains(v YearMonther) bool { return Within(v, r) }

// Equal reports whether r and other cover the same months.
func (r Range) Equal(other Range) bool {
	return r.first == other.first && r.last == other.last
}

// Period returns the lenient period covering the same months.
func (r Range) Period() Period {
	return Period{first: r.first, last: r.last, months: r.months}
}

// Shift returns r moved n months forward (or backward if n is negative).
func (r Range) Shift(n int) (Range, error) {
	a, b, err := shiftEndpoints(r.first, r.last, n)
	if err != nil {
		return Range{}, err
	}
	return NewRange(a, b)
}

// String renders r as YYYY-MM/YYYY-MM.
func (r Range) String() string { return formatSpan(r.first, r.last) }

// MarshalText implements [encoding.TextMarshaler].
func (r Range) MarshalText() ([]byte, error) {
	if r.months == nil {
		return nil, fmt.Errorf("%w: cannot marshal zero Range", ErrInvalidRange)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
