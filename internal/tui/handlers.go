package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
)

// exportedMsg reports the outcome of a background export.
type exportedMsg struct {
	Path    string
	BatchID string
	Pages   int
	Labels  int
	Err     error
}

func handleQuit(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

func handleToggleHelp(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	if m.viewMode == ViewHelp {
		m.viewMode = ViewBuilder
	} else {
		m.viewMode = ViewHelp
	}
	return m, nil, true
}

func handleCloseHelp(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m.viewMode = ViewBuilder
	return m, nil, true
}

// reconfigure applies a settings change, reverting it when the new
// combination does not validate.
func (m BuilderModel) reconfigure(change func(*BuilderModel)) BuilderModel {
	prev := m
	change(&m)
	if err := m.applyConfig(); err != nil {
		prev.err = err
		return prev
	}
	m.err = nil
	m.saveSettings()
	return m
}

func handleCycleKind(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m = m.reconfigure(func(m *BuilderModel) {
		m.kind = m.kind.Next()
		if !slices.Contains(component.Tolerances(m.kind), m.tolerance) {
			m.tolerance = component.DefaultTolerance
		}
	})
	m.status = "component: " + KindTitle(m.kind)
	return m, nil, true
}

func handleCycleBands(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m = m.reconfigure(func(m *BuilderModel) {
		if m.bandCount == 4 {
			m.bandCount = 5
		} else {
			m.bandCount = 4
		}
	})
	m.status = fmt.Sprintf("%d-band code", m.bandCount)
	return m, nil, true
}

func handleCycleTolerance(m BuilderModel, key string) (BuilderModel, tea.Cmd, bool) {
	m = m.reconfigure(func(m *BuilderModel) {
		m.tolerance = stepTolerance(m.kind, m.tolerance, key == "up")
	})
	m.status = fmt.Sprintf("tolerance ±%g%%", m.tolerance)
	return m, nil, true
}

// stepTolerance moves to the next larger (or smaller) tolerance legal for
// kind, wrapping at either end.
func stepTolerance(kind component.Kind, current float64, up bool) float64 {
	tols := component.Tolerances(kind)
	i := slices.Index(tols, current)
	if i < 0 {
		return component.DefaultTolerance
	}
	if up {
		i = (i + 1) % len(tols)
	} else {
		i = (i - 1 + len(tols)) % len(tols)
	}
	return tols[i]
}

func handleToggleTolerance(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m = m.reconfigure(func(m *BuilderModel) { m.showTolerance = !m.showTolerance })
	m.status = "tolerance band " + onOff(m.showTolerance)
	return m, nil, true
}

func handleToggleCondense(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	m = m.reconfigure(func(m *BuilderModel) { m.condense = !m.condense })
	m.status = "condense " + onOff(m.condense)
	return m, nil, true
}

func handleAddLabel(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.status = "type a value first"
		return m, nil, true
	}
	res := m.enc.Encode(raw)
	if !res.OK() {
		m.err = res.Err
		return m, nil, true
	}
	m.err = nil
	m.batch = append(m.batch, res)
	m.input.Reset()
	m.refreshPreview()
	m.status = "added " + res.Label.Text
	if res.Warn != nil {
		m.status += " (no color code)"
	}
	return m, nil, true
}

func handleDropLabel(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	if len(m.batch) == 0 {
		m.status = "batch is empty"
		return m, nil, true
	}
	last := m.batch[len(m.batch)-1]
	m.batch = m.batch[:len(m.batch)-1]
	m.status = "dropped " + last.Label.Text
	return m, nil, true
}

func handleExport(m BuilderModel, _ string) (BuilderModel, tea.Cmd, bool) {
	if len(m.Labels()) == 0 {
		m.err = sheet.ErrNoLabels
		return m, nil, true
	}
	m.err = nil
	m.status = "exporting..."
	return m, m.exportCmd(time.Now()), true
}

// exportCmd renders the batch to a timestamped PDF in the output directory
// and records it in the history store.
func (m BuilderModel) exportCmd(now time.Time) tea.Cmd {
	ctx, store, renderer := m.ctx, m.store, m.renderer
	results := slices.Clone(m.batch)
	cfg := m.enc.Config()
	dir := m.outDir
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportedMsg{Err: fmt.Errorf("create output dir: %w", err)}
		}
		path := filepath.Join(dir, config.OutputPrefix+now.Format("20060102_150405")+".pdf")
		labels := component.Labels(results)
		pages, err := renderer.RenderFile(path, labels)
		if err != nil {
			return exportedMsg{Err: err}
		}
		rec := database.NewBatchRecord(cfg, renderer.Template().Name, &path, results)
		id, err := store.RecordBatch(ctx, rec)
		if err != nil {
			return exportedMsg{Path: path, Pages: pages, Labels: len(labels), Err: fmt.Errorf("record history: %w", err)}
		}
		return exportedMsg{Path: path, BatchID: id, Pages: pages, Labels: len(labels)}
	}
}

func (m BuilderModel) handleExported(msg exportedMsg) BuilderModel {
	if msg.Err != nil {
		m.err = msg.Err
		// The PDF exists even when history could not be written.
		if msg.Path != "" {
			m.status = "wrote " + msg.Path
			m.batch = nil
		}
		return m
	}
	m.err = nil
	m.batch = nil
	m.status = fmt.Sprintf("exported %d labels on %d page(s) to %s", msg.Labels, msg.Pages, msg.Path)
	m.logger.Info("batch exported", "id", msg.BatchID, "path", msg.Path)
	return m
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
