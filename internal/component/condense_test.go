package component

import (
	"errors"
	"math"
	"testing"
)

func TestFractionalDepth(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.0047, 2},
		{0.47, 0},
		{0.05, 1},
		{0.000001, 5},
		{4700, 0},
		{1, 0},
	}
	for _, tc := range cases {
		if got := FractionalDepth(tc.in); got != tc.want {
			t.Fatalf("FractionalDepth(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCondense(t *testing.T) {
	cases := []struct {
		in          float64
		coefficient string
		prefix      string
	}{
		{4700, "4.7", "k"},
		{0.0047, "4.7", "m"},
		{1000, "1", "k"},
		{470, "470", ""},
		{1, "1", ""},
		{999.5, "999.5", ""},
		{0.47, "470", "m"},
		{0.1, "100", "m"},
		{0.000001, "1", "µ"},
		{0.0000000022, "2.2", "n"},
		{0.000000000001, "1", "p"},
		{1234567, "1.234567", "M"},
		{2200000000, "2.2", "G"},
		{4700000000000, "4.7", "T"},
		{0.1234567, "123.457", "m"},
		{0.0012345678, "1.23457", "m"},
		{0.00000123456789, "1.23457", "µ"},
	}
	for _, tc := range cases {
		coefficient, prefix, err := Condense(tc.in)
		if err != nil {
			t.Fatalf("Condense(%v) failed: %v", tc.in, err)
		}
		if coefficient != tc.coefficient || prefix != tc.prefix {
			t.Fatalf("Condense(%v) = (%q, %q), want (%q, %q)", tc.in, coefficient, prefix, tc.coefficient, tc.prefix)
		}
	}
}

func TestCondenseCoefficientRange(t *testing.T) {
	values := []float64{0.0033, 0.15, 0.999, 1, 10, 68, 330, 1500, 47000, 820000, 3300000, 1e9, 5.6e11}
	for _, v := range values {
		coefficient, prefix, err := Condense(v)
		if err != nil {
			t.Fatalf("Condense(%v) failed: %v", v, err)
		}
		c, err := Expand(coefficient, "")
		if err != nil {
			t.Fatalf("Expand(%q) failed: %v", coefficient, err)
		}
		if c < 1 || c >= 1000 {
			t.Fatalf("Condense(%v) coefficient %q outside [1, 1000)", v, coefficient)
		}
		switch {
		case v >= 1000 && (prefix == "" || prefix == "m" || prefix == "µ" || prefix == "n" || prefix == "p"):
			t.Fatalf("Condense(%v) prefix %q, want k/M/G/T", v, prefix)
		case v < 1 && (prefix == "" || prefix == "k" || prefix == "M" || prefix == "G" || prefix == "T"):
			t.Fatalf("Condense(%v) prefix %q, want m/µ/n/p", v, prefix)
		}
	}
}

func TestCondenseRoundTrip(t *testing.T) {
	values := []float64{0.0000000022, 0.0047, 0.033, 0.5, 1, 4.7, 47, 470, 4700, 68000, 1234567, 2.2e9, 4.7e12}
	for _, v := range values {
		coefficient, prefix, err := Condense(v)
		if err != nil {
			t.Fatalf("Condense(%v) failed: %v", v, err)
		}
		got, err := Expand(coefficient, prefix)
		if err != nil {
			t.Fatalf("Expand(%q, %q) failed: %v", coefficient, prefix, err)
		}
		if math.Abs(got-v)/v > 1e-9 {
			t.Fatalf("round trip %v -> %s%s -> %v", v, coefficient, prefix, got)
		}
	}
}

func TestCondenseOutOfRange(t *testing.T) {
	for _, v := range []float64{0.0000000000001, 4.7e15} {
		if _, _, err := Condense(v); !errors.Is(err, ErrValueOutOfRange) {
			t.Fatalf("Condense(%v) error = %v, want ErrValueOutOfRange", v, err)
		}
	}
}

func TestCondenseRejectsNonPositive(t *testing.T) {
	for _, v := range []float64{0, -4.7, math.NaN(), math.Inf(1)} {
		if _, _, err := Condense(v); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("Condense(%v) error = %v, want ErrInvalidValue", v, err)
		}
	}
}

func TestExpandUnknownPrefix(t *testing.T) {
	if _, err := Expand("4.7", "x"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
