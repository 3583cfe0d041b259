package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "dd/MM/yyyy", want: "02/01/2006"},
		{pattern: "yyyy-MM-dd", want: "2006-01-02"},
		{pattern: "d MMMM yyyy", want: "2 January 2006"},
		{pattern: "EEEE d MMM", want: "Monday 2 Jan"},
		{pattern: "HH:mm:ss", want: "15:04:05"},
		{pattern: "h:mm a", want: "3:04 PM"},
		{pattern: "yy", want: "06"},
		{pattern: "ss.SSS", want: "05.000"},
		{pattern: "HH'h'mm", want: "15h04"},
		{pattern: "'at' HH:mm", want: "at 15:04"},
		{pattern: "yyyy-MM-dd'T'HH:mm:ssZ", want: "2006-01-02T15:04:05-0700"},
		{pattern: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Layout(tt.pattern))
		})
	}
}

func TestLayoutCached(t *testing.T) {
	// Repeated translation of the same pattern must agree with itself.
	first := Layout("dd/MM/yyyy HH:mm")
	assert.Equal(t, first, Layout("dd/MM/yyyy HH:mm"))
}

func TestFormat(t *testing.T) {
	c := testCalendar(sunday)
	in := time.Date(2023, time.February, 5, 14, 7, 0, 0, time.UTC) // a Sunday

	assert.Equal(t, "05/02/2023", c.Format(in, "dd/MM/yyyy"))
	assert.Equal(t, "Sunday 5 February 2023", c.Format(in, "EEEE d MMMM yyyy"))
	assert.Equal(t, "14:07", c.Format(in, "HH:mm"))
}

func TestFormatLocale(t *testing.T) {
	c := testCalendar(sunday)
	in := time.Date(2023, time.February, 5, 0, 0, 0, 0, time.UTC) // a Sunday

	assert.Equal(t, "dimanche", c.FormatLocale(in, "EEEE", mustParseTag(t, "fr")))
	assert.Equal(t, "Februar", c.FormatLocale(in, "MMMM", mustParseTag(t, "de")))
	assert.Equal(t, "Sunday", c.FormatLocale(in, "EEEE", mustParseTag(t, "en")))
}

func TestParse(t *testing.T) {
	c := testCalendar(sunday)

	got, err := c.Parse("15/06/2023", "dd/MM/yyyy")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), got)

	t.Run("failure_is_empty", func(t *testing.T) {
		got, err := c.Parse("not-a-date", "dd/MM/yyyy")
		assert.Error(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestFormatParseRoundTrip(t *testing.T) {
	c := testCalendar(sunday)
	in := time.Date(2023, time.June, 15, 18, 45, 12, 0, time.UTC)

	out, err := c.Parse(c.Format(in, "dd/MM/yyyy"), "dd/MM/yyyy")
	assert.NoError(t, err)
	assert.True(t, c.IsOnSameDay(in, out), "round-trip must preserve the calendar day")
}
