package main

import (
	"flag"
	"fmt"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/util"
)

// componentFlags are the encoder settings accepted on the command line. Only
// flags the user actually set override a job file.
type componentFlags struct {
	kind        string
	unit        string
	tolerance   float64
	bands       int
	noCondense  bool
	textOnly    bool
	noTolerance bool
	voltage     float64
	temperature int
	set         map[string]bool
}

func (c *componentFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.kind, "component", "", "resistor, capacitor or inductor (default: guessed)")
	fs.StringVar(&c.unit, "unit", "", "unit name, e.g. ohm, F or µH (default: Ω)")
	fs.Float64Var(&c.tolerance, "tolerance", component.DefaultTolerance, "tolerance in percent")
	fs.IntVar(&c.bands, "bands", component.DefaultBandCount, "band count (4 or 5)")
	fs.BoolVar(&c.noCondense, "no-condense", false, "print values as given instead of with a metric prefix")
	fs.BoolVar(&c.textOnly, "text-only", false, "omit color bands")
	fs.BoolVar(&c.noTolerance, "no-tolerance", false, "omit the tolerance band")
	fs.Float64Var(&c.voltage, "voltage", component.DefaultVoltage, "capacitor voltage rating")
	fs.IntVar(&c.temperature, "temperature", component.DefaultTemperature, "capacitor temperature rating in °C")
}

// collect records which flags were given. Call after Parse.
func (c *componentFlags) collect(fs *flag.FlagSet) {
	c.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })
}

// apply overlays the flags the user set onto base.
func (c *componentFlags) apply(base component.Options) (component.Options, error) {
	opts := base
	if c.set["component"] {
		kind, err := component.ParseKind(c.kind)
		if err != nil {
			return component.Options{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		opts.Kind = kind
	}
	if c.set["unit"] {
		opts.UnitName = util.Ptr(c.unit)
	}
	if c.set["tolerance"] {
		opts.Tolerance = util.Ptr(c.tolerance)
	}
	if c.set["bands"] {
		opts.BandCount = util.Ptr(c.bands)
	}
	if c.set["no-condense"] {
		opts.Condense = util.Ptr(!c.noCondense)
	}
	if c.set["text-only"] {
		opts.ShowColorCodes = util.Ptr(!c.textOnly)
	}
	if c.set["no-tolerance"] {
		opts.ShowTolerance = util.Ptr(!c.noTolerance)
	}
	if c.set["voltage"] {
		opts.Voltage = util.Ptr(c.voltage)
	}
	if c.set["temperature"] {
		opts.Temperature = util.Ptr(c.temperature)
	}
	return opts, nil
}
