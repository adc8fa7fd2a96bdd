package component

import "strconv"

// ColorBands builds the band sequence for value. Digit bands come from
// leading, the second-to-last band is the multiplier and the last band is the
// tolerance, which is dropped when the config hides it.
//
// A multiplier with no table entry returns a *ColorLookupError and no bands.
func ColorBands(value float64, leading int, cfg Config) ([]string, error) {
	if leading <= 0 {
		return nil, &InvalidValueError{Input: strconv.Itoa(leading), Reason: "leading digits must be positive"}
	}

	bands := make([]string, cfg.BandCount())
	for i := range bands {
		bands[i] = "black"
	}
	for i, ch := range strconv.Itoa(leading) {
		if i >= len(bands)-2 {
			break
		}
		bands[i], _ = DigitColor(int(ch - '0'))
	}

	multiplier := roundTo(value/float64(leading), 2)
	color, ok := MultiplierColor(multiplier)
	if !ok {
		return nil, &ColorLookupError{Multiplier: multiplier}
	}
	bands[len(bands)-2] = color

	if !cfg.ShowTolerance() {
		return bands[:len(bands)-1], nil
	}
	tol, ok := ToleranceColor(cfg.Kind(), cfg.Tolerance())
	if !ok {
		return nil, invalidField("tolerance", cfg.Tolerance())
	}
	bands[len(bands)-1] = tol
	return bands, nil
}
