package component

import (
	"math"
	"strconv"
	"strings"
)

// Value is a positive component value in its base unit. Text keeps the
// decimal form the value was written in.
type Value struct {
	Text  string
	Float float64
}

// ParseValue parses a decimal value such as "4700", "0.0047" or "4.7e3".
// Exponent notation is rewritten as plain decimal text.
func ParseValue(s string) (Value, error) {
	text := strings.TrimPrefix(strings.TrimSpace(s), "+")
	if text == "" {
		return Value{}, &InvalidValueError{Input: s, Reason: "empty"}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, &InvalidValueError{Input: s, Reason: "not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &InvalidValueError{Input: s, Reason: "not a finite number"}
	}
	if f <= 0 {
		return Value{}, &InvalidValueError{Input: s, Reason: "must be greater than zero"}
	}
	if strings.ContainsAny(text, "eE") {
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return Value{Text: text, Float: f}, nil
}

// roundTo rounds x to the given number of decimal places using the exact
// decimal expansion of x.
func roundTo(x float64, places int) float64 {
	if places < 0 {
		p := math.Pow(10, float64(-places))
		return math.Round(x/p) * p
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// decimalPlaces counts the digits after the point in the shortest decimal
// form of x.
func decimalPlaces(x float64) int {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func formatCoefficient(x float64) string {
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
