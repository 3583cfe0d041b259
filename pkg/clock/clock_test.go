package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	after := time.Now()
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed(t *testing.T) {
	want := time.Date(2023, time.January, 1, 12, 30, 0, 0, time.UTC)
	c := At(want)
	assert.True(t, c.Now().Equal(want))
	assert.True(t, c.Now().Equal(want), "Fixed must not advance between calls")
}
