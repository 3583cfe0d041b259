// datectl inspects dates the way the calendar package sees them: relative
// labels, period boundaries, and pattern-based reformatting.
//
// Examples:
//
//	datectl label 05/02/2023
//	datectl bounds week 05/02/2023 --week-start monday
//	datectl convert 05/02/2023 --to "EEEE d MMMM yyyy" --locale fr
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"                        // Logging.
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.

	"github.com/datekit/datekit/internal/pkg/cmd"
	"github.com/datekit/datekit/pkg/calendar"
)

const defaultPattern = "dd/MM/yyyy"

var (
	app           = kingpin.New("datectl", "Inspect dates: relative labels, period boundaries, reformatting.")
	loggingFlags  = cmd.NewLoggingFlags(app, "info")
	calendarFlags = cmd.NewCalendarFlags(app)
	inPattern     = app.Flag("pattern", "Pattern date arguments are parsed with.").
			Default(defaultPattern).String()

	labelCmd  = app.Command("label", "Print the relative label for a date.")
	labelDate = labelCmd.Arg("date", "Date to label. Defaults to now.").String()

	boundsCmd    = app.Command("bounds", "Print the start and end of the period containing a date.")
	boundsPeriod = boundsCmd.Arg("period", "One of: day, week, month, year.").
			Required().Enum("day", "week", "month", "year")
	boundsDate = boundsCmd.Arg("date", "Date to inspect. Defaults to now.").String()

	convertCmd  = app.Command("convert", "Reformat a date with another pattern.")
	convertDate = convertCmd.Arg("date", "Date to reformat. Defaults to now.").String()
	outPattern  = convertCmd.Flag("to", "Output pattern.").Default("EEEE d MMMM yyyy").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := loggingFlags.NewLogger()
	defer func() {
		// Flush any buffered logs before exiting.
		_ = logger.Sync()
	}()
	teardown := cmd.SetGlobalLogger(logger)
	defer teardown()

	cal, err := calendarFlags.Calendar(logger)
	if err != nil {
		logger.Fatal("Failed to build calendar", zap.Error(err))
	}

	switch command {
	case labelCmd.FullCommand():
		t := parseArg(cal, logger, *labelDate)
		fmt.Println(cal.RelativeDate(t))

	case boundsCmd.FullCommand():
		t := parseArg(cal, logger, *boundsDate)
		start, end := bounds(cal, *boundsPeriod, t)
		fmt.Printf("start\t%s\n", start.Format(time.RFC3339))
		fmt.Printf("end\t%s\n", end.Format(time.RFC3339))

	case convertCmd.FullCommand():
		t := parseArg(cal, logger, *convertDate)
		fmt.Println(cal.Format(t, *outPattern))
	}
}

// parseArg resolves a date argument, defaulting to now when empty.
func parseArg(cal *calendar.Calendar, logger *zap.Logger, arg string) time.Time {
	if arg == "" {
		return cal.Now()
	}
	t, err := cal.Parse(arg, *inPattern)
	if err != nil {
		logger.Fatal("Failed to parse date", zap.String("date", arg), zap.Error(err))
	}
	return t
}

func bounds(cal *calendar.Calendar, period string, t time.Time) (start, end time.Time) {
	switch period {
	case "day":
		return cal.StartOfDay(t), cal.EndOfDay(t)
	case "week":
		return cal.StartOfWeek(t), cal.EndOfWeek(t)
	case "month":
		return cal.StartOfMonth(t), cal.EndOfMonth(t)
	default:
		return cal.StartOfYear(t), cal.EndOfYear(t)
	}
}
