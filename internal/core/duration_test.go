package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDuration(t *testing.T) {
	tests := []struct {
		total   int
		hours   int
		minutes int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{90, 1, 30},
		{125, 2, 5},
		{-10, 0, 0},
	}

	for _, tt := range tests {
		h, m := SplitDuration(tt.total)
		assert.Equal(t, tt.hours, h, "hours for %d", tt.total)
		assert.Equal(t, tt.minutes, m, "minutes for %d", tt.total)
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for total := 0; total <= 600; total++ {
		h, m := SplitDuration(total)
		assert.Equal(t, total, ToMinutes(h, m))
	}
}
