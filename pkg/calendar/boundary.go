package calendar

import "time"

// Period boundaries delegate the arithmetic to jinzhu/now configured with
// the calendar's week-start day and timezone. End boundaries are pinned
// to whole-second precision (23:59:59), not the last representable
// nanosecond.

// StartOfDay returns the canonical start of t's calendar day.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).BeginningOfDay()
}

// EndOfDay returns 23:59:59 of t's calendar day.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).EndOfDay().Truncate(time.Second)
}

// StartOfWeek returns the start of the day the week of t begins on.
// Fails-soft: a zero t falls back to now.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	if t.IsZero() {
		c.log.Debug("startOfWeek on absent instant, falling back to now")
		return c.Now()
	}
	return c.config().With(c.in(t)).BeginningOfWeek()
}

// EndOfWeek returns 23:59:59 of the last day of t's week.
// Fails-soft: a zero t falls back to now.
func (c *Calendar) EndOfWeek(t time.Time) time.Time {
	if t.IsZero() {
		c.log.Debug("endOfWeek on absent instant, falling back to now")
		return c.Now()
	}
	return c.config().With(c.in(t)).EndOfWeek().Truncate(time.Second)
}

// StartOfMonth returns the start of the first day of t's month.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) StartOfMonth(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).BeginningOfMonth()
}

// EndOfMonth returns 23:59:59 of the last day of t's month.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) EndOfMonth(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).EndOfMonth().Truncate(time.Second)
}

// StartOfYear returns January 1 00:00:00 of t's year.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) StartOfYear(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).BeginningOfYear()
}

// EndOfYear returns December 31 23:59:59 of t's year.
// Fails-empty: a zero t propagates unchanged.
func (c *Calendar) EndOfYear(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return c.config().With(c.in(t)).EndOfYear().Truncate(time.Second)
}
