package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/sheet"
	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// View modes of the builder.
const (
	ViewBuilder = iota
	ViewHelp
)

// BuilderConfig carries the builder's dependencies.
type BuilderConfig struct {
	Store        database.Store
	Template     models.Template
	SheetOptions sheet.Options
	OutputDir    string
	Theme        string
	Logger       *slog.Logger
}

// BuilderModel is the interactive label builder: type a value, watch the
// preview, collect labels into a batch and export them as a PDF sheet.
type BuilderModel struct {
	ctx      context.Context
	store    database.Store
	logger   *slog.Logger
	keys     *HandlerRegistry
	renderer *sheet.Renderer
	outDir   string

	input    textinput.Model
	progress progress.Model

	kind          component.Kind
	tolerance     float64
	bandCount     int
	condense      bool
	showTolerance bool

	enc     *component.Encoder
	preview component.Result
	batch   []component.Result

	viewMode int
	status   string
	err      error
	width    int
	height   int
	quitting bool
}

// NewBuilderModel builds the model and restores the last used kind, band
// count and tolerance from the store.
func NewBuilderModel(ctx context.Context, cfg BuilderConfig) (BuilderModel, error) {
	if cfg.Store == nil {
		return BuilderModel{}, errors.New("builder requires a store")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	renderer, err := sheet.NewRenderer(cfg.Template, cfg.SheetOptions, logger)
	if err != nil {
		return BuilderModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "4.7e3"
	ti.Prompt = "value: "
	ti.CharLimit = config.MaxValueLength
	ti.Width = 30
	ti.Focus()

	m := BuilderModel{
		ctx:           ctx,
		store:         cfg.Store,
		logger:        logger,
		keys:          builderKeys(),
		renderer:      renderer,
		outDir:        cfg.OutputDir,
		input:         ti,
		progress:      progress.New(progress.WithDefaultGradient()),
		kind:          component.Resistor,
		tolerance:     component.DefaultTolerance,
		bandCount:     component.DefaultBandCount,
		condense:      true,
		showTolerance: true,
	}
	m.progress.Width = 30

	theme := cfg.Theme
	if saved, ok := m.store.GetSetting(ctx, config.SettingTheme); ok {
		theme = saved
	}
	if theme != "" && !SetTheme(theme) {
		m.logger.Warn("unknown theme", "theme", theme)
	}

	m.restoreSettings()
	if err := m.applyConfig(); err != nil {
		// Saved settings no longer validate; fall back to defaults.
		m.logger.Warn("saved builder settings rejected", "error", err)
		m.kind, m.tolerance, m.bandCount = component.Resistor, component.DefaultTolerance, component.DefaultBandCount
		if err := m.applyConfig(); err != nil {
			return BuilderModel{}, err
		}
	}
	return m, nil
}

func (m *BuilderModel) restoreSettings() {
	if v, ok := m.store.GetSetting(m.ctx, config.SettingLastKind); ok {
		if k, err := component.ParseKind(v); err == nil {
			m.kind = k
		}
	}
	if v, ok := m.store.GetSetting(m.ctx, config.SettingLastBandCount); ok {
		if n, err := strconv.Atoi(v); err == nil {
			m.bandCount = n
		}
	}
	if v, ok := m.store.GetSetting(m.ctx, config.SettingLastTolerance); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			m.tolerance = f
		}
	}
}

func (m *BuilderModel) saveSettings() {
	values := map[string]string{
		config.SettingLastKind:      string(m.kind),
		config.SettingLastBandCount: strconv.Itoa(m.bandCount),
		config.SettingLastTolerance: strconv.FormatFloat(m.tolerance, 'f', -1, 64),
	}
	for key, value := range values {
		if err := m.store.SetSetting(m.ctx, key, value); err != nil {
			util.LogError("save builder setting "+key, err)
		}
	}
}

func (m BuilderModel) options() component.Options {
	return component.Options{
		Kind:          m.kind,
		Tolerance:     util.Ptr(m.tolerance),
		BandCount:     util.Ptr(m.bandCount),
		Condense:      util.Ptr(m.condense),
		ShowTolerance: util.Ptr(m.showTolerance),
	}
}

// applyConfig rebuilds the encoder from the current settings and refreshes
// the preview. On error the previous encoder stays in place.
func (m *BuilderModel) applyConfig() error {
	cfg, err := component.NewConfig(m.options())
	if err != nil {
		return err
	}
	m.enc = component.NewEncoder(cfg, component.WithLogger(m.logger))
	m.refreshPreview()
	return nil
}

func (m *BuilderModel) refreshPreview() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" || m.enc == nil {
		m.preview = component.Result{}
		return
	}
	m.preview = m.enc.Encode(raw)
}

// Labels returns the successfully encoded labels of the batch in order.
func (m BuilderModel) Labels() []models.Label {
	return component.Labels(m.batch)
}

// Config returns the active encoding configuration.
func (m BuilderModel) Config() component.Config {
	return m.enc.Config()
}

func (m BuilderModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case exportedMsg:
		return m.handleExported(msg), nil
	case progress.FrameMsg:
		next, cmd := m.progress.Update(msg)
		m.progress = next.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if next, cmd, ok := m.keys.Handle(m, msg.String()); ok {
			return next, cmd
		}
		if m.viewMode != ViewBuilder {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m BuilderModel) handleWindowSize(msg tea.WindowSizeMsg) BuilderModel {
	m.width, m.height = msg.Width, msg.Height
	target := 30
	if m.width < config.CompactModeThreshold {
		target = m.width / 2
	}
	if target < 10 {
		target = 10
	}
	m.progress.Width = target
	return m
}

// Run starts the builder in the alternate screen and blocks until it exits.
func Run(ctx context.Context, cfg BuilderConfig) error {
	m, err := NewBuilderModel(ctx, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
