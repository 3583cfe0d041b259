package calendar

import (
	"time"

	"go.uber.org/zap"
)

// Unit identifies a single calendar field.
type Unit uint

const (
	// UnitYear is the year field.
	UnitYear Unit = 1 << iota
	// UnitMonth is the month field.
	UnitMonth
	// UnitDay is the day-of-month field.
	UnitDay
	// UnitHour is the hour field.
	UnitHour
	// UnitMinute is the minute field.
	UnitMinute
	// UnitSecond is the second field.
	UnitSecond
	// UnitNanosecond is the sub-second field.
	UnitNanosecond
	// UnitWeekday is the day-of-week field. Extraction only: it does not
	// participate in reconstruction.
	UnitWeekday
	// UnitWeekOfYear is the ISO week-of-year field. Extraction only.
	UnitWeekOfYear
)

// ComponentSet is a set of calendar fields used to selectively extract
// from, or reconstruct, a time.Time. Fields absent from the set take
// their calendar default on reconstruction: year 1, January, day 1,
// midnight.
type ComponentSet uint

// NewComponentSet returns the set containing the given units.
func NewComponentSet(units ...Unit) ComponentSet {
	var s ComponentSet
	for _, u := range units {
		s |= ComponentSet(u)
	}
	return s
}

// Has reports whether u is in the set.
func (s ComponentSet) Has(u Unit) bool {
	return s&ComponentSet(u) != 0
}

// reconstructable masks the units that can be written back into a time
// value. Weekday and week-of-year are derived fields and cannot.
const reconstructable = ComponentSet(UnitYear | UnitMonth | UnitDay |
	UnitHour | UnitMinute | UnitSecond | UnitNanosecond)

// Convenience sets.
var (
	// DateComponents identifies the calendar date: year, month, day.
	DateComponents = NewComponentSet(UnitYear, UnitMonth, UnitDay)

	// TimeComponents identifies the time of day down to the nanosecond.
	TimeComponents = NewComponentSet(UnitHour, UnitMinute, UnitSecond, UnitNanosecond)

	// DateTimeComponents identifies the full date and time of day.
	DateTimeComponents = DateComponents | TimeComponents
)

// Fields holds the extracted calendar fields of an instant.
type Fields struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Weekday    time.Weekday
	WeekOfYear int
}

// Components extracts every calendar field of t in the calendar's
// timezone. WeekOfYear is the ISO 8601 week number.
func (c *Calendar) Components(t time.Time) Fields {
	t = c.in(t)
	_, week := t.ISOWeek()
	return Fields{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Weekday:    t.Weekday(),
		WeekOfYear: week,
	}
}

// reconstruct rebuilds an instant from the components of t named by set,
// with unnamed fields at their calendar defaults. ok is false when the
// set names no reconstructable field.
func (c *Calendar) reconstruct(t time.Time, set ComponentSet) (_ time.Time, ok bool) {
	if set&reconstructable == 0 {
		return time.Time{}, false
	}
	t = c.in(t)
	year, month, day := 1, time.January, 1
	var hour, min, sec, nsec int
	if set.Has(UnitYear) {
		year = t.Year()
	}
	if set.Has(UnitMonth) {
		month = t.Month()
	}
	if set.Has(UnitDay) {
		day = t.Day()
	}
	if set.Has(UnitHour) {
		hour = t.Hour()
	}
	if set.Has(UnitMinute) {
		min = t.Minute()
	}
	if set.Has(UnitSecond) {
		sec = t.Second()
	}
	if set.Has(UnitNanosecond) {
		nsec = t.Nanosecond()
	}
	return time.Date(year, month, day, hour, min, sec, nsec, c.loc), true
}

// With returns t reduced to the fields named by set, with the rest at
// their calendar defaults. Fails-soft: when the set names no
// reconstructable field, t is returned unchanged.
func (c *Calendar) With(t time.Time, set ComponentSet) time.Time {
	out, ok := c.reconstruct(t, set)
	if !ok {
		c.log.Debug("component reconstruction failed, keeping instant",
			zap.Uint("set", uint(set)))
		return t
	}
	return out
}

// NowWith returns the current time reduced to the fields named by set.
// Fails-empty: the zero time when the set names no reconstructable field.
func (c *Calendar) NowWith(set ComponentSet) time.Time {
	out, ok := c.reconstruct(c.Now(), set)
	if !ok {
		return time.Time{}
	}
	return out
}

// UpdateDateKeepingTime returns an instant with the calendar date of
// other and the time of day of t. A zero other means now. Fails-soft:
// a zero t is returned unchanged.
func (c *Calendar) UpdateDateKeepingTime(t, other time.Time) time.Time {
	if t.IsZero() {
		c.log.Debug("updateDateKeepingTime on absent instant, keeping it")
		return t
	}
	if other.IsZero() {
		other = c.Now()
	}
	t, other = c.in(t), c.in(other)
	return time.Date(other.Year(), other.Month(), other.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc)
}

// UpdateTimeKeepingDate returns an instant with the calendar date of t
// and the time of day of other. A zero other means now. Fails-soft:
// a zero t is returned unchanged.
func (c *Calendar) UpdateTimeKeepingDate(t, other time.Time) time.Time {
	if t.IsZero() {
		c.log.Debug("updateTimeKeepingDate on absent instant, keeping it")
		return t
	}
	if other.IsZero() {
		other = c.Now()
	}
	t, other = c.in(t), c.in(other)
	return time.Date(t.Year(), t.Month(), t.Day(),
		other.Hour(), other.Minute(), other.Second(), other.Nanosecond(), c.loc)
}

// IntervalWithin reduces t and other to the fields named by set and
// returns the signed duration t minus other at that granularity.
// Fails-empty: zero when either side is absent or the set names no
// reconstructable field.
func (c *Calendar) IntervalWithin(set ComponentSet, t, other time.Time) time.Duration {
	if t.IsZero() || other.IsZero() {
		return 0
	}
	a, ok := c.reconstruct(t, set)
	if !ok {
		return 0
	}
	b, ok := c.reconstruct(other, set)
	if !ok {
		return 0
	}
	return a.Sub(b)
}
