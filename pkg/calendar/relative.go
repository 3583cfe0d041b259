package calendar

import (
	"fmt"
	"time"
)

// relativeDatePattern renders dates that fall outside the forward week
// window.
const relativeDatePattern = "dd/MM/yyyy"

// Suffix returns the English ordinal suffix for a day of the month:
// "st", "nd", "rd", or "th". Days 11-13 take "th" via the default
// branch, which is the correct English exception.
func Suffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// DaySuffix returns the ordinal suffix for t's day of the month.
func (c *Calendar) DaySuffix(t time.Time) string {
	return Suffix(c.in(t).Day())
}

// WeekdayName returns the full weekday name of t in the calendar's
// locale.
func (c *Calendar) WeekdayName(t time.Time) string {
	return c.FormatLocale(t, "EEEE", c.locale)
}

// RelativeDay labels t against the current day: "Today", "Tomorrow", or
// the full weekday name.
func (c *Calendar) RelativeDay(t time.Time) string {
	switch {
	case c.IsToday(t):
		return "Today"
	case c.IsTomorrow(t):
		return "Tomorrow"
	default:
		return c.WeekdayName(t)
	}
}

// RelativeDate labels t for display. Inside the forward week window
// (today through one week out, day-granular) it returns "Today",
// "Tomorrow", the weekday name while still before the end of the current
// week, or "{Weekday} {day}{suffix}" past it. Outside the window it
// returns t formatted as dd/MM/yyyy.
func (c *Calendar) RelativeDate(t time.Time) string {
	if !c.IsWithinWeek(t) {
		return c.Format(t, relativeDatePattern)
	}
	switch {
	case c.IsToday(t):
		return "Today"
	case c.IsTomorrow(t):
		return "Tomorrow"
	case c.IsBeforeDay(t, c.EndOfWeek(c.Now())):
		return c.WeekdayName(t)
	default:
		return fmt.Sprintf("%s %d%s", c.WeekdayName(t), c.in(t).Day(), c.DaySuffix(t))
	}
}
