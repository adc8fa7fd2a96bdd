package testutil

import (
	"github.com/akyairhashvil/eclb/internal/models"
)

// TemplateBuilder provides fluent API for creating test sheet templates.
// The default is a 4x2in sheet holding a 2x2 grid of 1.5x0.75in stickers.
type TemplateBuilder struct {
	tmpl models.Template
}

func NewTemplate() *TemplateBuilder {
	return &TemplateBuilder{
		tmpl: models.Template{
			Name:          "tiny",
			SheetWidth:    4,
			SheetHeight:   2,
			UpperMargin:   0.25,
			LeftMargin:    0.25,
			MiddlePadding: 0.5,
			LabelWidth:    1.5,
			LabelHeight:   0.75,
			Rows:          2,
			Cols:          2,
		},
	}
}

func (b *TemplateBuilder) WithName(name string) *TemplateBuilder {
	b.tmpl.Name = name
	return b
}

func (b *TemplateBuilder) WithSheetSize(width, height float64) *TemplateBuilder {
	b.tmpl.SheetWidth = width
	b.tmpl.SheetHeight = height
	return b
}

func (b *TemplateBuilder) WithMargins(upper, left float64) *TemplateBuilder {
	b.tmpl.UpperMargin = upper
	b.tmpl.LeftMargin = left
	return b
}

func (b *TemplateBuilder) WithPadding(p float64) *TemplateBuilder {
	b.tmpl.MiddlePadding = p
	return b
}

func (b *TemplateBuilder) WithLabelSize(width, height float64) *TemplateBuilder {
	b.tmpl.LabelWidth = width
	b.tmpl.LabelHeight = height
	return b
}

func (b *TemplateBuilder) WithGrid(rows, cols int) *TemplateBuilder {
	b.tmpl.Rows = rows
	b.tmpl.Cols = cols
	return b
}

func (b *TemplateBuilder) Build() models.Template {
	return b.tmpl
}

// LabelBuilder provides fluent API for creating test labels.
type LabelBuilder struct {
	label models.BatchLabel
}

func NewLabel() *LabelBuilder {
	return &LabelBuilder{
		label: models.BatchLabel{
			Input: "4700",
			Text:  "4.7k Ω",
			Bands: []string{"yellow", "purple", "black", "brown", "gold"},
		},
	}
}

func (b *LabelBuilder) WithInput(input string) *LabelBuilder {
	b.label.Input = input
	return b
}

func (b *LabelBuilder) WithText(text string) *LabelBuilder {
	b.label.Text = text
	return b
}

func (b *LabelBuilder) WithBands(bands ...string) *LabelBuilder {
	b.label.Bands = bands
	return b
}

func (b *LabelBuilder) WithoutBands() *LabelBuilder {
	b.label.Bands = nil
	return b
}

// Build returns the label as recorded in history.
func (b *LabelBuilder) Build() models.BatchLabel {
	return b.label
}

// Label returns the label as drawn on a sheet.
func (b *LabelBuilder) Label() models.Label {
	return models.Label{Text: b.label.Text, Bands: b.label.Bands}
}
