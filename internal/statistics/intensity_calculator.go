package statistics

import (
	"fmt"
	"time"
)

// Intensity returns observations per second: len(timestamps) divided by the
// seconds between the earliest and latest timestamp.
func Intensity(timestamps []time.Time) (float64, error) {
	if len(timestamps) < 2 {
		return 0, fmt.Errorf("%w: intensity needs at least 2 timestamps, got %d", ErrInsufficientData, len(timestamps))
	}

	earliest, latest := timestamps[0], timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.Before(earliest) {
			earliest = ts
		}
		if ts.After(latest) {
			latest = ts
		}
	}

	span := latest.Sub(earliest).Seconds()
	if span <= 0 {
		return 0, fmt.Errorf("%w: all %d timestamps equal %s", ErrZeroTimeSpan, len(timestamps), earliest.Format(time.RFC3339Nano))
	}

	return float64(len(timestamps)) / span, nil
}
