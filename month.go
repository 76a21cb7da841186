// Package months provides calendar month values and contiguous spans of months.
//
// A [Month] is one month of one proleptic Gregorian year. Months support
// comparison, calendar-correct arithmetic across year boundaries and
// conversion from any value exposing a year and a month, such as [time.Time].
//
// Two span types are built on top of Month:
//
//   - [Period] accepts its endpoints in either order and always succeeds.
//   - [Range] requires the first endpoint to be strictly before the second.
//
// Both materialize every month between their endpoints, inclusive.
//
// Basic usage:
//
//	m, err := months.New(2019, time.December)
//	next, err := m.Add(1)              // 2020-01
//	p := months.NewPeriod(next, m)     // 2019-12/2020-01
//	p.Contains(time.Now())
//
// Functions that can fail return an error wrapping one of [ErrInvalidDate],
// [ErrInvalidArgument] or [ErrInvalidRange]. Use [Must] where a failure is a
// programming error.
package months

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bounds of representable years.
const (
	MinYear = -9999
	MaxYear = 9999
)

// YearMonther is anything that carries a calendar year and month.
// [time.Time] satisfies it.
type YearMonther interface {
	Year() int
	Month() time.Month
}

// Month is a single calendar month. The zero value is not a valid month;
// construct one with [New], [Of] or [Parse]. Months are comparable with ==.
type Month struct {
	year  int
	month time.Month
}

// New returns the month of the given year. It fails with [ErrInvalidDate]
// if month is outside January..December or year is outside [MinYear, MaxYear].
func New(year int, month time.Month) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: month %d of year %d", ErrInvalidDate, int(month), year)
	}
	if year < MinYear || year > MaxYear {
		return Month{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	return Month{year: year, month: month}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(year int, month time.Month) Month {
	return Must(New(year, month))
}

// Of downgrades v to the month containing it. For a [time.Time] that is the
// month of its calendar date in its own location.
//
// Of panics if v's year is outside [MinYear, MaxYear]; use [New] with
// v.Year() and v.Month() to get an error instead.
func Of(v YearMonther) Month {
	return MustNew(v.Year(), v.Month())
}

// FromTime returns the month containing t's calendar date in t's location.
func FromTime(t time.Time) Month {
	return Of(t)
}

// fromIndex is the inverse of Month.index.
func fromIndex(idx int) (Month, error) {
	year := idx / 12
	rem := idx % 12
	if rem < 0 {
		rem += 12
		year--
	}
	return New(year, time.Month(rem+1))
}

// index is the absolute month number, year*12 + month - 1.
func (m Month) index() int {
	return m.year*12 + int(m.month) - 1
}

// Year returns the calendar year.
func (m Month) Year() int { return m.year }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.month }

// FirstDay returns midnight UTC on day 1 of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the final day of the month.
func (m Month) LastDay() time.Time {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.LastDay().Day()
}

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool {
	return m == Month{}
}

// Compare returns -1 if m is before other, +1 if after and 0 if equal.
func (m Month) Compare(other Month) int {
	switch a, b := m.index(), other.index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool { return m.Compare(other) < 0 }

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool { return m.Compare(other) > 0 }

// Compare orders two months chronologically. It matches the signature
// expected by [slices.SortFunc].
func Compare(a, b Month) int { return a.Compare(b) }

// Add returns the month n months after m. n may be negative. The result
// fails with [ErrInvalidDate] only when it falls outside the representable
// years.
func (m Month) Add(n int) (Month, error) {
	if n == 0 {
		return m, nil
	}
	// Bound n before adding so the index cannot overflow.
	const span = (MaxYear - MinYear + 1) * 12
	if n > span || n < -span {
		return Month{}, fmt.Errorf("%w: %s %+d months out of range", ErrInvalidDate, m, n)
	}
	next, err := fromIndex(m.index() + n)
	if err != nil {
		return Month{}, fmt.Errorf("%s %+d months: %w", m, n, err)
	}
	return next, nil
}

// Sub returns the month n months before m. n must be positive; otherwise
// Sub fails with [ErrInvalidArgument].
func (m Month) Sub(n int) (Month, error) {
	if n <= 0 {
		return Month{}, fmt.Errorf("%w: cannot subtract %d months", ErrInvalidArgument, n)
	}
	return m.Add(-n)
}

// Next returns the following month.
func (m Month) Next() (Month, error) { return m.Add(1) }

// Prev returns the preceding month.
func (m Month) Prev() (Month, error) { return m.Add(-1) }

// MonthsBetween returns the signed number of months from a to b.
// It is zero when a == b and negative when b is before a.
func MonthsBetween(a, b Month) int {
	return b.index() - a.index()
}

// now is the clock used by Current. Tests replace it.
var now = time.Now

// Current returns the current month in the named IANA time zone
// (e.g. "Asia/Tokyo"). An unknown zone fails with [ErrInvalidDate].
func Current(zone string) (Month, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	t := now().In(loc)
	return New(t.Year(), t.Month())
}

// CurrentUTC returns the current month in UTC.
func CurrentUTC() Month {
	return Of(now().UTC())
}

// String renders m as YYYY-MM, e.g. "2019-03". Negative years carry a
// leading minus sign.
func (m Month) String() string {
	year := m.year
	sign := ""
	if year < 0 {
		sign = "-"
		year = -year
	}
	return fmt.Sprintf("%s%04d-%02d", sign, year, int(m.month))
}

// Parse parses a month in the YYYY-MM form produced by [Month.String].
func Parse(s string) (Month, error) {
	i := strings.LastIndexByte(s, '-')
	if i <= 0 {
		return Month{}, fmt.Errorf("%w: cannot parse %q as YYYY-MM", ErrInvalidDate, s)
	}
	ys, ms := s[:i], s[i+1:]
	digits := strings.TrimPrefix(ys, "-")
	if len(digits) < 4 || len(ms) != 2 || !isDigits(digits) || !isDigits(ms) {
		return Month{}, fmt.Errorf("%w: cannot parse %q as YYYY-MM", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return Month{}, fmt.Errorf("%w: year in %q: %w", ErrInvalidDate, s, err)
	}
	month, _ := strconv.Atoi(ms)
	return New(year, time.Month(month))
}

// MustParse is like [Parse] but panics on error. It is intended for
// literals in tests and package-level variables.
func MustParse(s string) Month {
	return Must(Parse(s))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalText implements [encoding.TextMarshaler].
func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return nil, fmt.Errorf("%w: cannot marshal zero Month", ErrInvalidDate)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
