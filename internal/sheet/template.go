// Package sheet lays encoded labels out on sticker sheets and renders them
// as PDF.
package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownTemplate = errors.New("unknown sheet template")
	ErrTemplateOverrun = errors.New("stickers do not fit on the sheet")
)

const fitEpsilon = 1e-6

var validate = validator.New()

var builtins = []models.Template{
	{
		Name:          "avery-5160",
		SheetWidth:    8.5,
		SheetHeight:   11,
		UpperMargin:   0.5,
		LeftMargin:    0.1875,
		MiddlePadding: 0.125,
		LabelWidth:    2.625,
		LabelHeight:   1,
		Rows:          10,
		Cols:          3,
		BuiltIn:       true,
	},
	{
		Name:          "avery-5167",
		SheetWidth:    8.5,
		SheetHeight:   11,
		UpperMargin:   0.5,
		LeftMargin:    0.3,
		MiddlePadding: 0.3,
		LabelWidth:    1.75,
		LabelHeight:   0.5,
		Rows:          20,
		Cols:          4,
		BuiltIn:       true,
	},
}

// Builtins returns the templates shipped with the application.
func Builtins() []models.Template {
	return append([]models.Template(nil), builtins...)
}

// Builtin looks up a shipped template by name.
func Builtin(name string) (models.Template, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range builtins {
		if t.Name == name {
			return t, nil
		}
	}
	return models.Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// ValidateTemplate checks field ranges and that every sticker lies inside
// the sheet.
func ValidateTemplate(t models.Template) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("template %q: %w", t.Name, err)
	}
	width := t.LeftMargin + float64(t.Cols)*t.LabelWidth + float64(t.Cols-1)*t.MiddlePadding
	if width > t.SheetWidth+fitEpsilon {
		return fmt.Errorf("%w: %q needs %.3fin of %.3fin width", ErrTemplateOverrun, t.Name, width, t.SheetWidth)
	}
	height := t.UpperMargin + float64(t.Rows)*t.LabelHeight
	if height > t.SheetHeight+fitEpsilon {
		return fmt.Errorf("%w: %q needs %.3fin of %.3fin height", ErrTemplateOverrun, t.Name, height, t.SheetHeight)
	}
	return nil
}
