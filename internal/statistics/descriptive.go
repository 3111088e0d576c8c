package statistics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Description holds descriptive statistics of a millisecond sequence, used
// for diagnostics next to the P95.
type Description struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

func Describe(values []float64) (Description, error) {
	if len(values) == 0 {
		return Description{}, fmt.Errorf("%w: description of an empty sequence", ErrInsufficientData)
	}

	data := stats.Float64Data(values)

	minimum, err := stats.Min(data)
	if err != nil {
		return Description{}, err
	}
	maximum, err := stats.Max(data)
	if err != nil {
		return Description{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Description{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Description{}, err
	}

	return Description{Min: minimum, Max: maximum, Mean: mean, Median: median}, nil
}
