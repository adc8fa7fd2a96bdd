package component

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidValue         = errors.New("invalid component value")
	ErrValueOutOfRange      = errors.New("value outside metric prefix range")
	ErrColorLookupMiss      = errors.New("no color for multiplier")
)

// InvalidConfigurationError names the configuration field that failed
// validation and the value that was attempted.
type InvalidConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v", e.Field, e.Value)
}

func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// InvalidValueError reports input that cannot be encoded.
type InvalidValueError struct {
	Input  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("value %q: %s", e.Input, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// ColorLookupError is returned when the computed multiplier has no band
// color. It is recoverable: the label keeps its text and drops its bands.
type ColorLookupError struct {
	Multiplier float64
}

func (e *ColorLookupError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no color for multiplier %s", strconv.FormatFloat(e.Multiplier, 'f', -1, 64))
}

func (e *ColorLookupError) Unwrap() error { return ErrColorLookupMiss }

func invalidField(field string, value any) error {
	return &InvalidConfigurationError{Field: field, Value: value}
}
