package component

import (
	"maps"
	"slices"
)

var digitColors = [10]string{
	"black", "brown", "red", "orange", "yellow",
	"green", "blue", "purple", "gray", "white",
}

var multiplierColors = map[float64]string{
	0.01:       "silver",
	0.1:        "gold",
	1:          "black",
	10:         "brown",
	100:        "red",
	1000:       "orange",
	10000:      "yellow",
	100000:     "green",
	1000000:    "blue",
	10000000:   "purple",
	100000000:  "gray",
	1000000000: "white",
}

var resistorTolerances = map[float64]string{
	1:    "brown",
	2:    "red",
	0.5:  "green",
	0.25: "blue",
	0.1:  "purple",
	0.05: "gray",
	5:    "gold",
	10:   "silver",
}

var inductorTolerances = map[float64]string{
	20: "black",
	1:  "brown",
	2:  "red",
	5:  "green",
	10: "white",
}

var capacitorTolerances = map[float64]string{
	20: "black",
	1:  "brown",
	2:  "red",
	3:  "orange",
	4:  "yellow",
	5:  "gold",
	10: "silver",
}

type rgb struct{ R, G, B int }

// Named-color values, matching the CSS color keywords.
var swatches = map[string]rgb{
	"black":  {0, 0, 0},
	"brown":  {165, 42, 42},
	"red":    {255, 0, 0},
	"orange": {255, 165, 0},
	"yellow": {255, 255, 0},
	"green":  {0, 128, 0},
	"blue":   {0, 0, 255},
	"purple": {128, 0, 128},
	"gray":   {128, 128, 128},
	"white":  {255, 255, 255},
	"gold":   {255, 215, 0},
	"silver": {192, 192, 192},
}

// DigitColor returns the band color for a single decimal digit.
func DigitColor(d int) (string, bool) {
	if d < 0 || d > 9 {
		return "", false
	}
	return digitColors[d], true
}

// MultiplierColor returns the band color for an exact power-of-ten multiplier.
func MultiplierColor(m float64) (string, bool) {
	c, ok := multiplierColors[m]
	return c, ok
}

func toleranceTable(k Kind) map[float64]string {
	switch k {
	case Capacitor:
		return capacitorTolerances
	case Inductor:
		return inductorTolerances
	default:
		return resistorTolerances
	}
}

// ToleranceColor returns the tolerance band color for kind k.
func ToleranceColor(k Kind, tolerance float64) (string, bool) {
	c, ok := toleranceTable(k)[tolerance]
	return c, ok
}

// Tolerances returns the legal tolerances for kind k in ascending order.
func Tolerances(k Kind) []float64 {
	return slices.Sorted(maps.Keys(toleranceTable(k)))
}

// Swatch returns the RGB components for a band color name.
func Swatch(name string) (r, g, b int, ok bool) {
	c, ok := swatches[name]
	return c.R, c.G, c.B, ok
}
