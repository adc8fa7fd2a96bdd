package component

import (
	"strconv"
	"strings"
)

// LeadingDigits returns the first n significant digits of the decimal text
// as an integer. The decimal point and zeros ahead of the first nonzero digit
// are skipped, so "0.047" yields 47 for n=2. Short inputs are right-padded
// with zeros: "1" yields 100 for n=3.
func LeadingDigits(text string, n int) int {
	if n <= 0 {
		return 0
	}
	var b strings.Builder
	for _, ch := range text {
		if b.Len() == n {
			break
		}
		if ch < '0' || ch > '9' {
			continue
		}
		if ch == '0' && b.Len() == 0 {
			continue
		}
		b.WriteRune(ch)
	}
	for b.Len() < n {
		b.WriteByte('0')
	}
	d, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return d
}
