package component

import "math"

const matchEpsilon = 1e-9

var (
	bandCounts   = []float64{4, 5}
	voltages     = []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 2000}
	temperatures = []float64{70, 85, 125, 150}
)

// oneOf returns the legal member matching value, or an
// InvalidConfigurationError naming field. It never clamps.
func oneOf(field string, value float64, legal []float64) (float64, error) {
	for _, candidate := range legal {
		if math.Abs(candidate-value) < matchEpsilon {
			return candidate, nil
		}
	}
	return 0, invalidField(field, value)
}

// Voltages returns the legal capacitor voltage ratings.
func Voltages() []float64 {
	return append([]float64(nil), voltages...)
}

// Temperatures returns the legal capacitor temperature ratings.
func Temperatures() []int {
	out := make([]int, 0, len(temperatures))
	for _, t := range temperatures {
		out = append(out, int(t))
	}
	return out
}
