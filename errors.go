package months

import "errors"

var (
	// ErrInvalidDate reports a year and month that do not name a
	// representable calendar month.
	ErrInvalidDate = errors.New("months: invalid date")

	// ErrInvalidArgument reports an argument outside an operation's domain,
	// such as a non-positive count passed to [Month.Sub].
	ErrInvalidArgument = errors.New("months: invalid argument")

	// ErrInvalidRange reports [Range] endpoints that are equal or reversed.
	ErrInvalidRange = errors.New("months: invalid range")
)

// Must returns v, or panics with err if err is non-nil. It is meant to wrap
// calls whose failure indicates a bug in the caller:
//
//	m := months.Must(months.New(2019, time.March))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return v
}
