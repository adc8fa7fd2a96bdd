package component

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in    string
		text  string
		float float64
	}{
		{"4700", "4700", 4700},
		{" 0.0047 ", "0.0047", 0.0047},
		{"+470", "470", 470},
		{"4.7e3", "4700", 4700},
		{"2.2E-9", "0.0000000022", 2.2e-9},
		{"4.70", "4.70", 4.7},
	}
	for _, tc := range cases {
		v, err := ParseValue(tc.in)
		if err != nil {
			t.Fatalf("ParseValue(%q) failed: %v", tc.in, err)
		}
		if v.Text != tc.text || v.Float != tc.float {
			t.Fatalf("ParseValue(%q) = %+v, want {%s %v}", tc.in, v, tc.text, tc.float)
		}
	}
}

func TestParseValueRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "4k7", "0", "-1", "NaN", "Inf", "1e-400"} {
		_, err := ParseValue(in)
		if !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("ParseValue(%q) error = %v, want ErrInvalidValue", in, err)
		}
		var verr *InvalidValueError
		if !errors.As(err, &verr) || verr.Input != in {
			t.Fatalf("ParseValue(%q) expected InvalidValueError naming the input, got %v", in, err)
		}
	}
}
