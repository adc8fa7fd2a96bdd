package component

import (
	"unicode/utf8"

	"github.com/gertd/go-pluralize"
)

// Pluralizer turns a singular noun into its plural form.
type Pluralizer interface {
	Plural(word string) string
}

// NewPluralizer returns the English pluralizer used by default.
func NewPluralizer() Pluralizer {
	return pluralize.NewClient()
}

// LabelName composes the display text for v, e.g. "4.7k Ω" or "2.2k ohms".
func LabelName(v Value, cfg Config, p Pluralizer) (string, error) {
	name := v.Text
	if cfg.Condense() {
		coefficient, prefix, err := Condense(v.Float)
		if err != nil {
			return "", err
		}
		name = coefficient + prefix
	}

	unit := cfg.UnitName()
	if unit == "" {
		return name, nil
	}
	if v.Float > 1 && utf8.RuneCountInString(unit) > 1 && printableASCII(unit) && p != nil {
		return name + " " + p.Plural(unit), nil
	}
	return name + " " + unit, nil
}

func printableASCII(s string) bool {
	for _, r := range s {
		if r < 32 || r > 126 {
			return false
		}
	}
	return true
}
