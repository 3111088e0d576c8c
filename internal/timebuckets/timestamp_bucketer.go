package timebuckets

import (
	"fmt"
	"strings"
	"time"

	"duration-stats/internal/models"
)

// DateLayout is the calendar date format of summary rows.
const DateLayout = "2006-01-02"

// Layouts with an explicit offset. Fractional seconds are accepted by
// time.Parse after the seconds field even when the layout omits them.
// Offsets may be written as +hh:mm, +hhmm or +hh.
var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z07",

	// basic format
	"20060102T150405Z07:00",
	"20060102T150405Z0700",
	"20060102T150405Z07",
	"20060102T1504Z0700",
}

// Layouts without an offset, interpreted in the reference location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02 15",
	DateLayout,

	// basic format
	"20060102T150405",
	"20060102T1504",
	"20060102T15",
	"20060102",
}

// Bucketer assigns timestamps to time-of-day buckets and calendar dates.
// Hours and dates are read after converting the instant to the reference
// location, UTC unless configured otherwise.
type Bucketer struct {
	location *time.Location
}

func NewBucketer(location *time.Location) *Bucketer {
	if location == nil {
		location = time.UTC
	}
	return &Bucketer{location: location}
}

// NewBucketerFromName resolves an IANA location name such as "UTC" or "Europe/Berlin".
func NewBucketerFromName(name string) (*Bucketer, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}
	return NewBucketer(location), nil
}

func (b *Bucketer) Location() *time.Location {
	return b.location
}

// ParseTimestamp parses an ISO-8601 instant. Values without an offset are
// taken to be in the reference location.
func (b *Bucketer) ParseTimestamp(raw string) (time.Time, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, &UnparseableTimestampError{Raw: raw}
	}

	for _, layout := range offsetLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, nil
		}
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, text, b.location); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, &UnparseableTimestampError{Raw: raw}
}

// Bucket returns the time-of-day bucket of ts.
func (b *Bucketer) Bucket(ts time.Time) models.TimeOfDay {
	return models.TimeOfDayForHour(ts.In(b.location).Hour())
}

// CalendarDate returns the YYYY-MM-DD date of ts.
func (b *Bucketer) CalendarDate(ts time.Time) string {
	return ts.In(b.location).Format(DateLayout)
}

// DominantBucket returns the bucket with the highest count. Ties go to the
// bucket with the lower priority value (Morning, then Afternoon, then Evening).
func DominantBucket(counts map[models.TimeOfDay]int) (models.TimeOfDay, error) {
	var (
		dominant models.TimeOfDay
		best     int
	)
	for _, bucket := range models.TimesOfDay {
		if count := counts[bucket]; count > best {
			dominant, best = bucket, count
		}
	}
	if best == 0 {
		return "", ErrNoObservations
	}
	return dominant, nil
}
