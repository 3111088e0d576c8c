package normalizers

import (
	"regexp"
	"strconv"
	"strings"
)

type unit struct {
	suffix string
	// exponent is the power of ten that converts the unit to milliseconds
	exponent string
}

// units is ordered longest suffix first so that "ms" is never read as "s".
var units = []unit{
	{suffix: "ms", exponent: ""},
	{suffix: "us", exponent: "e-3"},
	{suffix: "µs", exponent: "e-3"}, // U+00B5 micro sign
	{suffix: "μs", exponent: "e-3"}, // U+03BC greek mu
	{suffix: "s", exponent: "e3"},
}

var decimalPattern = regexp.MustCompile(`^\+?(\d+(\.\d*)?|\.\d+)$`)

// ParseDuration converts a "<number><unit>" string such as "2.1s" or
// "9.58 ms" to milliseconds. Units are ms, s, us and µs, matched
// case-insensitively. The number must be a plain non-negative decimal.
//
// The unit scale is applied as a decimal exponent before conversion to
// float64, so "2.04s" yields exactly 2040 and "1721.39µs" exactly 1.72139.
func ParseDuration(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, errMalformed(raw, reasonEmpty)
	}

	lower := strings.ToLower(text)
	for _, u := range units {
		if !strings.HasSuffix(lower, u.suffix) {
			continue
		}
		magnitude := strings.TrimSpace(text[:len(text)-len(u.suffix)])
		return parseMagnitude(raw, magnitude, u.exponent)
	}

	return 0, errMalformed(raw, reasonMissingUnits)
}

func parseMagnitude(raw, magnitude, exponent string) (float64, error) {
	if strings.HasPrefix(magnitude, "-") {
		if _, err := strconv.ParseFloat(magnitude, 64); err == nil {
			return 0, errMalformed(raw, reasonNegative)
		}
		return 0, errMalformed(raw, reasonInvalidNumber)
	}
	if !decimalPattern.MatchString(magnitude) {
		return 0, errMalformed(raw, reasonInvalidNumber)
	}

	value, err := strconv.ParseFloat(magnitude+exponent, 64)
	if err != nil {
		// only reachable on overflow
		return 0, errMalformed(raw, reasonInvalidNumber)
	}

	return value, nil
}
