package months_test

import (
	"testing"
	"time"

	"github.com/rabitt1ove/months"
)

func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		months.New(2024, time.May)
	}
}

func BenchmarkAdd(b *testing.B) {
	start := m(2024, time.May)
	for b.Loop() {
		start.Add(-37)
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		months.Parse("2024-05")
	}
}

func BenchmarkString(b *testing.B) {
	mo := m(2024, time.May)
	for b.Loop() {
		_ = mo.String()
	}
}

func BenchmarkNewPeriod_Year(b *testing.B) {
	from, to := m(2024, time.December), m(2024, time.January)
	for b.Loop() {
		months.NewPeriod(from, to)
	}
}

func BenchmarkNewRange_Decade(b *testing.B) {
	from, to := m(2014, time.January), m(2024, time.January)
	for b.Loop() {
		months.NewRange(from, to)
	}
}

func BenchmarkWithin(b *testing.B) {
	p := months.NewPeriod(m(2024, time.January), m(2024, time.December))
	t := d(2024, time.November, 3)
	for b.Loop() {
		months.Within(t, p)
	}
}

func BenchmarkSpanWithin(b *testing.B) {
	outer := months.NewPeriod(m(2020, time.January), m(2024, time.December))
	inner := months.NewPeriod(m(2022, time.March), m(2023, time.August))
	for b.Loop() {
		months.SpanWithin(inner, outer)
	}
}
