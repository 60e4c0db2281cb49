// Package dateutil holds the single canonical day-granularity date treatment.
// All calendar comparisons in the booking core go through Day so that
// day-boundary behavior cannot drift between callers. Policy: days are
// normalized to midnight UTC regardless of the wall clock of the input.
package dateutil

import (
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day normalized to 00:00:00 UTC.
type Day struct {
	t time.Time
}

func NormalizeDay(t time.Time) Day {
	u := t.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return Day{}, err
	}
	return Day{t: t}, nil
}

func (d Day) Time() time.Time  { return d.t }
func (d Day) String() string   { return d.t.Format(dayLayout) }
func (d Day) IsZero() bool     { return d.t.IsZero() }
func (d Day) Before(o Day) bool { return d.t.Before(o.t) }
func (d Day) After(o Day) bool  { return d.t.After(o.t) }
func (d Day) Equal(o Day) bool  { return d.t.Equal(o.t) }

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Span is a closed interval of days. A single-day booking is the
// degenerate span where From == To.
type Span struct {
	From Day
	To   Day
}

func NewSpan(from, to Day) Span {
	return Span{From: from, To: to}
}

func SingleDay(d Day) Span {
	return Span{From: d, To: d}
}

func (s Span) IsValid() bool {
	return !s.From.IsZero() && !s.To.IsZero() && !s.From.After(s.To)
}

func (s Span) IsSingleDay() bool {
	return s.From.Equal(s.To)
}

// Overlaps implements the closed-interval intersection test
// [a,b] ∩ [c,d] ≠ ∅ ⇔ a ≤ d && c ≤ b.
func (s Span) Overlaps(o Span) bool {
	return !s.From.After(o.To) && !o.From.After(s.To)
}

func (s Span) Contains(d Day) bool {
	return !d.Before(s.From) && !d.After(s.To)
}

// Days enumerates every day in the span, inclusive.
func (s Span) Days() []Day {
	if !s.IsValid() {
		return nil
	}
	var out []Day
	for d := s.From; !d.After(s.To); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

func (s Span) NumDays() int {
	if !s.IsValid() {
		return 0
	}
	return int(s.To.Time().Sub(s.From.Time())/(24*time.Hour)) + 1
}
