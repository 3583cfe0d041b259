package calendar

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/datekit/datekit/pkg/clock"
)

// testCalendar returns a UTC Calendar frozen at now.
func testCalendar(now time.Time) *Calendar {
	return New(
		WithClock(clock.At(now)),
		WithLocation(time.UTC),
	)
}

// sunday is 2023-01-01, a Sunday, used as the anchor date across tests.
var sunday = time.Date(2023, time.January, 1, 10, 30, 0, 0, time.UTC)

func mustParseTag(t *testing.T, identifier string) language.Tag {
	t.Helper()
	tag, err := language.Parse(identifier)
	if err != nil {
		t.Fatalf("parse locale %q: %s", identifier, err)
	}
	return tag
}
