package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/sheet"
	"github.com/charmbracelet/lipgloss"
)

func (m BuilderModel) View() string {
	if m.quitting {
		return ""
	}
	if m.viewMode == ViewHelp {
		return CurrentTheme.Base.Render(m.renderHelp())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n\n")
	b.WriteString(m.renderBatch())
	b.WriteString("\n")
	b.WriteString(m.renderFill())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(m.keys.HelpForView(m.viewMode)))
	return CurrentTheme.Base.Render(b.String())
}

func (m BuilderModel) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - 4
	if w < config.MinPreviewWidth {
		w = config.MinPreviewWidth
	}
	return w
}

func (m BuilderModel) renderHeader() string {
	title := CurrentTheme.Header.Render("ECLB " + KindTitle(m.kind))
	desc := CurrentTheme.Highlight.Render(m.enc.Config().Describe())
	version := CurrentTheme.Dim.Render("v" + VersionLabel())
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return title + "\n" + desc
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", desc, "  ", version)
}

func (m BuilderModel) renderPreview() string {
	res := m.preview
	switch {
	case res.Input == "":
		return CurrentTheme.Dim.Render("type a value to preview its label")
	case res.Err != nil:
		return CurrentTheme.Error.Render(res.Err.Error())
	}
	line := RenderLabel(res.Label, m.contentWidth())
	if res.Label.HasBands() {
		line += "\n" + CurrentTheme.Dim.Render(RenderBandNames(res.Label.Bands))
	}
	if res.Warn != nil {
		line += "\n" + CurrentTheme.Warn.Render("no color code: "+res.Warn.Error())
	}
	return CurrentTheme.Preview.Render(line)
}

func (m BuilderModel) renderBatch() string {
	if len(m.batch) == 0 {
		return CurrentTheme.Dim.Render("batch is empty (enter adds the current value)")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", CurrentTheme.Focused.Render(fmt.Sprintf("Batch (%d)", len(m.batch))))
	start := 0
	if len(m.batch) > config.MaxVisibleLabels {
		start = len(m.batch) - config.MaxVisibleLabels
		fmt.Fprintf(&b, "%s\n", CurrentTheme.Dim.Render(fmt.Sprintf("  ... %d earlier", start)))
	}
	for i, res := range m.batch[start:] {
		fmt.Fprintf(&b, "%3d  %s\n", start+i+1, RenderLabel(res.Label, m.contentWidth()-5))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BuilderModel) renderFill() string {
	tmpl := m.renderer.Template()
	per := m.renderer.Options().LabelsPerSticker
	n := len(m.Labels())
	sheets := sheet.SheetCount(n, tmpl, per)
	bar := m.progress.ViewAs(sheet.Fill(n, tmpl, per))
	return fmt.Sprintf("%s %s  %d/%d on %d sheet(s)", tmpl.Name, bar, n, sheets*sheet.PerSheet(tmpl, per), sheets)
}

func (m BuilderModel) renderStatus() string {
	if m.err != nil {
		return CurrentTheme.Error.Render("Error: " + m.err.Error())
	}
	return CurrentTheme.Label.Render(m.status)
}

func (m BuilderModel) renderHelp() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Keys"))
	b.WriteString("\n\n")
	for _, kb := range m.keys.GetBindingsForView(ViewBuilder) {
		if kb.Description == "" {
			continue
		}
		fmt.Fprintf(&b, "  %-8s %s\n", kb.Key, kb.Description)
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render("esc or f1 to return"))
	return b.String()
}
