package models

import "time"

// Label is the output of encoding one component value: the display text and
// the ordered band colors. Bands is nil when no color code is available.
type Label struct {
	Text  string
	Bands []string
}

// HasBands reports whether the label carries a color code.
func (l Label) HasBands() bool {
	return len(l.Bands) > 0
}

// Template describes the geometry of a sticker sheet. All lengths are inches.
type Template struct {
	ID            int64
	Name          string  `validate:"required"`
	SheetWidth    float64 `validate:"gt=0"`
	SheetHeight   float64 `validate:"gt=0"`
	UpperMargin   float64 `validate:"gte=0"`
	LeftMargin    float64 `validate:"gte=0"`
	MiddlePadding float64 `validate:"gte=0"`
	LabelWidth    float64 `validate:"gt=0"`
	LabelHeight   float64 `validate:"gt=0"`
	Rows          int     `validate:"gt=0"`
	Cols          int     `validate:"gt=0"`
	BuiltIn       bool
}

// Stickers returns the number of stickers on one sheet.
func (t Template) Stickers() int {
	return t.Rows * t.Cols
}

// Batch is one encoded run recorded in the history store.
type Batch struct {
	ID         string
	Component  string
	Settings   string // one-line config summary
	Template   string
	OutputPath *string
	LabelCount int
	WarnCount  int
	ErrorCount int
	CreatedAt  time.Time
}

// BatchLabel is one label of a recorded batch, in input order.
type BatchLabel struct {
	BatchID  string
	Position int
	Input    string
	Text     string
	Bands    []string
}
