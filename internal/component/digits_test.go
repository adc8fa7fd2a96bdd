package component

import (
	"strconv"
	"testing"
)

func TestLeadingDigits(t *testing.T) {
	cases := []struct {
		text string
		n    int
		want int
	}{
		{"4700", 3, 470},
		{"470", 2, 47},
		{"0.0047", 2, 47},
		{"0.0047", 3, 470},
		{"4.7", 3, 470},
		{"1", 3, 100},
		{"1000", 2, 10},
		{"105", 3, 105},
		{"0.105", 3, 105},
		{"1234", 3, 123},
		{"0", 2, 0},
		{"470", 0, 0},
	}
	for _, tc := range cases {
		if got := LeadingDigits(tc.text, tc.n); got != tc.want {
			t.Fatalf("LeadingDigits(%q, %d) = %d, want %d", tc.text, tc.n, got, tc.want)
		}
	}
}

func TestLeadingDigitsIdempotent(t *testing.T) {
	for _, n := range []int{2, 3} {
		for _, text := range []string{"10", "47", "99", "100", "470", "999"} {
			if len(text) != n {
				continue
			}
			first := LeadingDigits(text, n)
			if strconv.Itoa(first) != text {
				t.Fatalf("LeadingDigits(%q, %d) = %d, want it unchanged", text, n, first)
			}
			again := LeadingDigits(strconv.Itoa(first), n)
			if first != again {
				t.Fatalf("LeadingDigits not idempotent for %q: %d then %d", text, first, again)
			}
		}
	}
}
