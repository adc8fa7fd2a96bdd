package component

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"resistor":   Resistor,
		"Capacitor":  Capacitor,
		" INDUCTOR ": Inductor,
	} {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseKind("diode"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestKindNextCycles(t *testing.T) {
	k := Resistor
	var seen []Kind
	for range Kinds {
		k = k.Next()
		seen = append(seen, k)
	}
	if diff := cmp.Diff([]Kind{Capacitor, Inductor, Resistor}, seen); diff != "" {
		t.Fatalf("Next cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestGuessKind(t *testing.T) {
	if GuessKind(true, true) != Capacitor {
		t.Fatalf("expected capacitor when voltage and temperature are set")
	}
	if GuessKind(true, false) != Resistor || GuessKind(false, false) != Resistor {
		t.Fatalf("expected resistor by default")
	}
}

func TestDefaultUnitIgnoresKind(t *testing.T) {
	for _, k := range Kinds {
		if got := DefaultConfig(k).UnitName(); got != DefaultUnitName {
			t.Fatalf("%s unit = %q, want %q", k, got, DefaultUnitName)
		}
	}
}
