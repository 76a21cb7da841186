package months

import (
	"fmt"
	"iter"
	"slices"
)

// Period is a lenient span of months. Its endpoints may be given in either
// order and may be equal, so construction never fails.
type Period struct {
	first, last Month
	months      []Month
}

var _ Span = Period{}

// NewPeriod returns the period covering a and b inclusive. If b is before a
// the endpoints are swapped.
func NewPeriod(a, b Month) Period {
	if a.After(b) {
		a, b = b, a
	}
	return Period{first: a, last: b, months: EnumerateMonths(a, b)}
}

// PeriodOf returns the period between the months containing a and b.
// It panics under the same conditions as [Of].
func PeriodOf(a, b YearMonther) Period {
	return NewPeriod(Of(a), Of(b))
}

// ParsePeriod parses the YYYY-MM/YYYY-MM form produced by [Period.String].
func ParsePeriod(s string) (Period, error) {
	a, b, err := parseSpan(s)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(a, b), nil
}

// First returns the earliest month.
func (p Period) First() Month { return p.first }

// Last returns the latest month.
func (p Period) Last() Month { return p.last }

// Months returns a copy of the period's months in ascending order.
func (p Period) Months() []Month { return slices.Clone(p.months) }

// Len returns the number of months in p.
func (p Period) Len() int { return len(p.months) }

// All iterates over the months of p in ascending order.
func (p Period) All() iter.Seq[Month] {
	return slices.Values(p.months)
}

// Contains reports whether the month containing v lies in p.
func (p Period) Contains(v YearMonther) bool { return Within(v, p) }

// Equal reports whether p and other cover the same months.
func (p Period) Equal(other Period) bool {
	return p.first == other.first && p.last == other.last
}

// Shift returns p moved n months forward (or backward if n is negative).
func (p Period) Shift(n int) (Period, error) {
	a, b, err := shiftEndpoints(p.first, p.last, n)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(a, b), nil
}

// String renders p as YYYY-MM/YYYY-MM.
func (p Period) String() string { return formatSpan(p.first, p.last) }

// MarshalText implements [encoding.TextMarshaler].
func (p Period) MarshalText() ([]byte, error) {
	if p.months == nil {
		return nil, fmt.Errorf("%w: cannot marshal zero Period", ErrInvalidDate)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
