package models

import "fmt"

// TimeOfDay is the part of the day an observation falls into.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"   // [05:00, 12:00)
	Afternoon TimeOfDay = "Afternoon" // [12:00, 17:00)
	Evening   TimeOfDay = "Evening"   // [17:00, 05:00)
)

// TimesOfDay lists every bucket in tie-break priority order.
var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening}

// TimeOfDayForHour maps an hour of day (0-23) to its bucket.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	default:
		return Evening
	}
}

// Priority orders buckets for tie breaking; lower wins.
func (t TimeOfDay) Priority() int {
	switch t {
	case Morning:
		return 0
	case Afternoon:
		return 1
	case Evening:
		return 2
	default:
		panic(fmt.Sprintf("invalid TimeOfDay: %q", t))
	}
}
