package component

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetricPrefixes are ordered from pico to tera; index 4 is 10^0.
var MetricPrefixes = []string{"p", "n", "µ", "m", "", "k", "M", "G", "T"}

const unitPrefixIndex = 4

// FractionalDepth counts the zeros between the decimal point and the first
// nonzero digit of v, i.e. how many times v can be multiplied by ten while
// staying below one. 0.0047 has depth 2. It works on the shortest decimal
// form of v so binary representation error cannot shift the count.
func FractionalDepth(v float64) int {
	if v <= 0 || v >= 1 {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	depth := 0
	for _, ch := range strings.TrimPrefix(s, "0.") {
		if ch != '0' {
			break
		}
		depth++
	}
	return depth
}

// Condense reduces v to a coefficient in [1, 1000) and a metric prefix,
// e.g. 4700 -> ("4.7", "k") and 0.0047 -> ("4.7", "m").
//
// Binary floating point cannot hold most decimal fractions, so every scaled
// value is re-rounded: above 1000 to the places the input has at that scale,
// below 1 to the fractional depth plus three places per step taken.
func Condense(v float64) (coefficient, prefix string, err error) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", "", &InvalidValueError{Input: strconv.FormatFloat(v, 'g', -1, 64), Reason: "must be a positive finite number"}
	}

	places := decimalPlaces(v)
	count := 0
	switch {
	case v >= 1000:
		for v/1000 >= 1 {
			count++
			v = roundTo(v/1000, places+3*count)
		}
	case v < 1:
		depth := FractionalDepth(v)
		for v < 1 {
			count--
			v = roundTo(v*1000, depth-3*count)
		}
	}

	idx := unitPrefixIndex + count
	if idx < 0 || idx >= len(MetricPrefixes) {
		return "", "", fmt.Errorf("%w: 10^%d", ErrValueOutOfRange, 3*count)
	}
	return formatCoefficient(v), MetricPrefixes[idx], nil
}

// Expand reverses Condense, returning the magnitude a coefficient and prefix
// stand for.
func Expand(coefficient, prefix string) (float64, error) {
	c, err := strconv.ParseFloat(coefficient, 64)
	if err != nil {
		return 0, &InvalidValueError{Input: coefficient, Reason: "not a number"}
	}
	for i, p := range MetricPrefixes {
		if p == prefix {
			return c * math.Pow(1000, float64(i-unitPrefixIndex)), nil
		}
	}
	return 0, &InvalidValueError{Input: prefix, Reason: "unknown metric prefix"}
}
