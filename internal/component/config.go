package component

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultTolerance   = 5.0
	DefaultBandCount   = 5
	DefaultVoltage     = 100.0
	DefaultTemperature = 70
	DefaultUnitName    = "Ω"
)

// Options carries the caller's requested settings. Nil pointers and an empty
// Kind mean "use the default".
type Options struct {
	Kind           Kind
	UnitName       *string
	Tolerance      *float64
	BandCount      *int
	Condense       *bool
	ShowColorCodes *bool
	ShowTolerance  *bool
	Voltage        *float64
	Temperature    *int
}

// Config is a validated, read-only encoding configuration. Build it with
// NewConfig; the zero value is not usable.
type Config struct {
	kind           Kind
	unitName       string
	tolerance      float64
	bandCount      int
	condense       bool
	showColorCodes bool
	showTolerance  bool
	voltage        float64
	temperature    int
}

// NewConfig validates opts and returns the resulting Config. Any invalid
// field fails the whole construction.
func NewConfig(opts Options) (Config, error) {
	kind := opts.Kind
	if kind == "" {
		kind = GuessKind(opts.Voltage != nil, opts.Temperature != nil)
	} else if !kind.Valid() {
		return Config{}, invalidField("component", string(kind))
	}

	cfg := Config{
		kind:           kind,
		unitName:       DefaultUnitName,
		tolerance:      DefaultTolerance,
		bandCount:      DefaultBandCount,
		condense:       boolOr(opts.Condense, true),
		showColorCodes: boolOr(opts.ShowColorCodes, true),
		showTolerance:  boolOr(opts.ShowTolerance, true),
		voltage:        DefaultVoltage,
		temperature:    DefaultTemperature,
	}

	if opts.UnitName != nil {
		cfg.unitName = strings.TrimSpace(*opts.UnitName)
	}

	if opts.Tolerance != nil {
		tol, err := oneOf("tolerance", *opts.Tolerance, Tolerances(kind))
		if err != nil {
			return Config{}, err
		}
		cfg.tolerance = tol
	}

	if opts.BandCount != nil {
		n, err := oneOf("band count", float64(*opts.BandCount), bandCounts)
		if err != nil {
			return Config{}, err
		}
		cfg.bandCount = int(n)
	}

	if opts.Voltage != nil {
		if kind != Capacitor {
			return Config{}, &InvalidConfigurationError{Field: "voltage", Value: *opts.Voltage, Reason: "only applies to capacitors"}
		}
		v, err := oneOf("voltage", *opts.Voltage, voltages)
		if err != nil {
			return Config{}, err
		}
		cfg.voltage = v
	}

	if opts.Temperature != nil {
		if kind != Capacitor {
			return Config{}, &InvalidConfigurationError{Field: "temperature", Value: *opts.Temperature, Reason: "only applies to capacitors"}
		}
		t, err := oneOf("temperature", float64(*opts.Temperature), temperatures)
		if err != nil {
			return Config{}, err
		}
		cfg.temperature = int(t)
	}

	return cfg, nil
}

// DefaultConfig returns the configuration for kind with every default applied.
func DefaultConfig(kind Kind) Config {
	cfg, err := NewConfig(Options{Kind: kind})
	if err != nil {
		panic(err)
	}
	return cfg
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func (c Config) Kind() Kind { return c.kind }
func (c Config) UnitName() string { return c.unitName }
func (c Config) Tolerance() float64 { return c.tolerance }
func (c Config) BandCount() int { return c.bandCount }
func (c Config) Condense() bool { return c.condense }
func (c Config) ShowColorCodes() bool { return c.showColorCodes }
func (c Config) ShowTolerance() bool { return c.showTolerance }
func (c Config) Voltage() float64 { return c.voltage }
func (c Config) Temperature() int { return c.temperature }
func (c Config) DigitCount() int { return c.bandCount - 2 }

// Options returns the settings that reproduce c through NewConfig.
func (c Config) Options() Options {
	opts := Options{
		Kind:           c.kind,
		UnitName:       &c.unitName,
		Tolerance:      &c.tolerance,
		BandCount:      &c.bandCount,
		Condense:       &c.condense,
		ShowColorCodes: &c.showColorCodes,
		ShowTolerance:  &c.showTolerance,
	}
	if c.kind == Capacitor {
		opts.Voltage = &c.voltage
		opts.Temperature = &c.temperature
	}
	return opts
}

// Describe returns a one-line summary, e.g. "resistor 5-band ±5% Ω".
func (c Config) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d-band", c.kind, c.bandCount)
	if c.showTolerance {
		fmt.Fprintf(&b, " ±%s%%", strconv.FormatFloat(c.tolerance, 'f', -1, 64))
	}
	if c.kind == Capacitor {
		fmt.Fprintf(&b, " %sV %d°C", strconv.FormatFloat(c.voltage, 'f', -1, 64), c.temperature)
	}
	if c.unitName != "" {
		b.WriteString(" " + c.unitName)
	}
	if !c.condense {
		b.WriteString(" raw")
	}
	if !c.showColorCodes {
		b.WriteString(" text-only")
	}
	return b.String()
}
