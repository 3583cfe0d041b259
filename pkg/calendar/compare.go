package calendar

import "time"

// Comparisons are inclusive: equal instants are both before and after
// each other. The *Day variants reduce both sides to {year, month, day}
// first, so any two instants on the same calendar day compare equal.

// IsBefore reports whether t is at or before other.
func (c *Calendar) IsBefore(t, other time.Time) bool {
	return !t.After(other)
}

// IsAfter reports whether t is at or after other.
func (c *Calendar) IsAfter(t, other time.Time) bool {
	return !t.Before(other)
}

// IsBeforeDay reports whether t's calendar day is on or before other's.
func (c *Calendar) IsBeforeDay(t, other time.Time) bool {
	a, _ := c.reconstruct(t, DateComponents)
	b, _ := c.reconstruct(other, DateComponents)
	return c.IsBefore(a, b)
}

// IsAfterDay reports whether t's calendar day is on or after other's.
func (c *Calendar) IsAfterDay(t, other time.Time) bool {
	a, _ := c.reconstruct(t, DateComponents)
	b, _ := c.reconstruct(other, DateComponents)
	return c.IsAfter(a, b)
}

// IsOnSameDay reports whether t and other fall on the same calendar day.
func (c *Calendar) IsOnSameDay(t, other time.Time) bool {
	a, _ := c.reconstruct(t, DateComponents)
	b, _ := c.reconstruct(other, DateComponents)
	return a.Equal(b)
}

// IsToday reports whether t falls on the current calendar day.
func (c *Calendar) IsToday(t time.Time) bool {
	return c.IsOnSameDay(t, c.Now())
}

// IsTomorrow reports whether t falls on the calendar day after today.
func (c *Calendar) IsTomorrow(t time.Time) bool {
	return c.IsOnSameDay(t, c.Now().AddDate(0, 0, 1))
}

// IsWithinWeek reports whether t's calendar day lies in the inclusive
// window from today through one week out.
func (c *Calendar) IsWithinWeek(t time.Time) bool {
	now := c.Now()
	return c.IsAfterDay(t, now) && c.IsBeforeDay(t, now.AddDate(0, 0, 7))
}

// Between reports whether t is between start and end inclusive.
func Between(t, start, end time.Time) bool {
	return (start.Equal(t) || start.Before(t)) && (end.Equal(t) || end.After(t))
}
