package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayForHour_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour     int
		expected TimeOfDay
	}{
		{hour: 0, expected: Evening},
		{hour: 4, expected: Evening},
		{hour: 5, expected: Morning},
		{hour: 11, expected: Morning},
		{hour: 12, expected: Afternoon},
		{hour: 16, expected: Afternoon},
		{hour: 17, expected: Evening},
		{hour: 23, expected: Evening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TimeOfDayForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestTimeOfDayForHour_Exhaustive(t *testing.T) {
	t.Parallel()

	counts := map[TimeOfDay]int{}
	for hour := 0; hour < 24; hour++ {
		bucket := TimeOfDayForHour(hour)
		assert.Contains(t, TimesOfDay, bucket)
		counts[bucket]++
	}

	assert.Equal(t, 7, counts[Morning])
	assert.Equal(t, 5, counts[Afternoon])
	assert.Equal(t, 12, counts[Evening])
}

func TestTimeOfDay_Priority(t *testing.T) {
	t.Parallel()

	assert.Less(t, Morning.Priority(), Afternoon.Priority())
	assert.Less(t, Afternoon.Priority(), Evening.Priority())
	assert.Panics(t, func() {
		TimeOfDay("Night").Priority()
	}, "Priority should panic on invalid TimeOfDay")
}
