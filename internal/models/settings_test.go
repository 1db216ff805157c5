package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPreOrderOpen(t *testing.T) {
	window := Settings{POStartDate: "2026-08-01", POEndDate: "2026-08-31"}

	tests := []struct {
		name string
		now  string
		want bool
	}{
		{"before window", "2026-07-31T12:00:00Z", false},
		{"first day", "2026-08-01T00:00:00Z", true},
		{"mid window", "2026-08-15T09:30:00Z", true},
		{"last day", "2026-08-31T23:00:00Z", true},
		{"after window", "2026-09-01T00:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tt.now)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, window.IsPreOrderOpen(now))
		})
	}
}

func TestIsPreOrderOpenWithTimestamps(t *testing.T) {
	window := Settings{
		POStartDate: "2026-08-01T10:00:00Z",
		POEndDate:   "2026-08-01T18:00:00Z",
	}

	at := func(v string) time.Time {
		now, _ := time.Parse(time.RFC3339, v)
		return now
	}

	assert.False(t, window.IsPreOrderOpen(at("2026-08-01T09:59:59Z")))
	assert.True(t, window.IsPreOrderOpen(at("2026-08-01T10:00:00Z")))
	assert.True(t, window.IsPreOrderOpen(at("2026-08-01T18:00:00Z")))
	assert.False(t, window.IsPreOrderOpen(at("2026-08-01T18:00:01Z")))
}

func TestIsPreOrderOpenClosedOnBadDates(t *testing.T) {
	assert.False(t, Settings{}.IsPreOrderOpen(time.Now()))
	assert.False(t, Settings{POStartDate: "2026-08-01"}.IsPreOrderOpen(time.Now()))
	assert.False(t, Settings{POStartDate: "soon", POEndDate: "later"}.IsPreOrderOpen(time.Now()))
}
