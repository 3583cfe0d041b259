package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/datekit/datekit/pkg/clock"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, time.Local, c.loc)
	assert.Equal(t, time.Sunday, c.weekStart)
	assert.NotNil(t, c.log)
}

func TestWithLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	c := New(
		WithClock(clock.At(time.Date(2023, time.January, 1, 20, 0, 0, 0, time.UTC))),
		WithLocation(tokyo),
	)

	// 20:00 UTC is already Jan 2 in Tokyo.
	assert.Equal(t, 2, c.Now().Day())
	assert.True(t, c.IsToday(time.Date(2023, time.January, 2, 9, 0, 0, 0, tokyo)))
}

func TestWithLocale(t *testing.T) {
	now := time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC)
	target := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC) // Thursday

	fr := New(WithClock(clock.At(now)), WithLocation(time.UTC), WithLocale("fr"))
	assert.Equal(t, "jeudi", fr.WeekdayName(target))

	t.Run("invalid_identifier_keeps_english", func(t *testing.T) {
		c := New(WithClock(clock.At(now)), WithLocation(time.UTC), WithLocale("no-such-locale!"))
		assert.Equal(t, "Thursday", c.WeekdayName(target))
	})
}
