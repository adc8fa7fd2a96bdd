package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// KindTitle returns the display name of a component kind, e.g. "Resistor".
func KindTitle(k component.Kind) string {
	return titleCaser.String(string(k))
}

// SwatchColor returns the hex color for a band name, or "" when unknown.
func SwatchColor(name string) string {
	r, g, b, ok := component.Swatch(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RenderBands draws each band as a colored cell block. Unknown colors are
// drawn as "?" placeholders.
func RenderBands(bands []string) string {
	cells := make([]string, 0, len(bands))
	blank := strings.Repeat(" ", config.SwatchWidth)
	for _, band := range bands {
		hex := SwatchColor(band)
		if hex == "" {
			cells = append(cells, CurrentTheme.Dim.Render(centerCell("?")))
			continue
		}
		cells = append(cells, lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(blank))
	}
	return strings.Join(cells, " ")
}

// RenderBandNames lists band colors by name, e.g. "yellow purple black".
func RenderBandNames(bands []string) string {
	return strings.Join(bands, " ")
}

// RenderLabel renders one label as text followed by its swatches, truncated
// to width cells when width is positive.
func RenderLabel(l models.Label, width int) string {
	line := CurrentTheme.Label.Render(l.Text)
	if l.HasBands() {
		line += "  " + RenderBands(l.Bands)
	}
	return truncate(line, width)
}

func truncate(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func centerCell(s string) string {
	pad := config.SwatchWidth - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
