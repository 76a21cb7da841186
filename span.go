package months

import (
	"fmt"
	"strings"
)

// Span is an ordered, inclusive, gap-free run of months.
// [Period] and [Range] implement it.
type Span interface {
	First() Month
	Last() Month
	Months() []Month
}

// EnumerateMonths returns every month from from to to, inclusive, in
// ascending order. It returns nil if to is before from.
func EnumerateMonths(from, to Month) []Month {
	n := MonthsBetween(from, to)
	if n < 0 {
		return nil
	}
	out := make([]Month, 0, n+1)
	start := from.index()
	for i := 0; i <= n; i++ {
		// Every index between two valid months is itself valid.
		out = append(out, Must(fromIndex(start+i)))
	}
	return out
}

// Within reports whether the month containing v is one of s's months.
func Within(v YearMonther, s Span) bool {
	m, err := New(v.Year(), v.Month())
	if err != nil {
		return false
	}
	for _, sm := range s.Months() {
		if sm == m {
			return true
		}
	}
	return false
}

// SpanWithin reports whether every month of inner is also a month of outer.
// The spans may be of different types.
func SpanWithin(inner, outer Span) bool {
	set := make(map[Month]struct{})
	for _, m := range outer.Months() {
		set[m] = struct{}{}
	}
	for _, m := range inner.Months() {
		if _, ok := set[m]; !ok {
			return false
		}
	}
	return true
}

// formatSpan renders endpoints in the ISO 8601 interval form YYYY-MM/YYYY-MM.
func formatSpan(first, last Month) string {
	return first.String() + "/" + last.String()
}

func parseSpan(s string) (Month, Month, error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return Month{}, Month{}, fmt.Errorf("%w: cannot parse %q as YYYY-MM/YYYY-MM", ErrInvalidDate, s)
	}
	first, err := Parse(a)
	if err != nil {
		return Month{}, Month{}, err
	}
	last, err := Parse(b)
	if err != nil {
		return Month{}, Month{}, err
	}
	return first, last, nil
}

// shiftEndpoints moves both endpoints by n months.
func shiftEndpoints(first, last Month, n int) (Month, Month, error) {
	a, err := first.Add(n)
	if err != nil {
		return Month{}, Month{}, fmt.Errorf("shift: %w", err)
	}
	b, err := last.Add(n)
	if err != nil {
		return Month{}, Month{}, fmt.Errorf("shift: %w", err)
	}
	return a, b, nil
}
