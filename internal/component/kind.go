// Package component encodes electrical component values into display names
// and color band sequences.
package component

import "strings"

// Kind selects the tolerance table and the optional attributes that apply.
type Kind string

const (
	Resistor  Kind = "resistor"
	Capacitor Kind = "capacitor"
	Inductor  Kind = "inductor"
)

// Kinds lists the supported kinds in display order.
var Kinds = []Kind{Resistor, Capacitor, Inductor}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Valid() {
		return k, nil
	}
	return "", invalidField("component", s)
}

func (k Kind) Valid() bool {
	switch k {
	case Resistor, Capacitor, Inductor:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	for i, candidate := range Kinds {
		if candidate == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Resistor
}

// GuessKind picks a kind when the caller did not name one: voltage and
// temperature together only make sense for a capacitor.
func GuessKind(voltageSet, temperatureSet bool) Kind {
	if voltageSet && temperatureSet {
		return Capacitor
	}
	return Resistor
}
