package cmd

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/datekit/datekit/pkg/calendar"
)

// weekdays maps the accepted --week-start values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// CalendarFlags represents a set of flags configuring a Calendar.
type CalendarFlags struct {
	// IANA timezone name, e.g. "Europe/London". Empty means local.
	Timezone string

	// BCP 47 locale identifier, e.g. "en" or "fr-FR".
	Locale string

	// Weekday name weeks begin on.
	WeekStart string
}

// NewCalendarFlags returns a new CalendarFlags.
func NewCalendarFlags(app Flagger) *CalendarFlags {
	var f CalendarFlags

	app.Flag("timezone", "IANA timezone to resolve dates in.").
		PlaceHolder("ZONE_NAME").
		StringVar(&f.Timezone)

	app.Flag("locale", "Locale for month and weekday names.").
		Default("en").
		StringVar(&f.Locale)

	app.Flag("week-start", "Weekday weeks begin on.").
		Default("sunday").
		HintOptions("sunday", "monday", "saturday").
		EnumVar(&f.WeekStart, "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday")

	return &f
}

// Calendar builds a Calendar from these flags.
func (f *CalendarFlags) Calendar(log *zap.Logger) (*calendar.Calendar, error) {
	loc := time.Local
	if f.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(f.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "load timezone %q", f.Timezone)
		}
	}
	return calendar.New(
		calendar.WithLocation(loc),
		calendar.WithLocale(f.Locale),
		calendar.WithWeekStart(weekdays[f.WeekStart]),
		calendar.WithLogger(log),
	), nil
}
