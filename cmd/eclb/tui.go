package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/tui"
	"github.com/akyairhashvil/eclb/internal/util"
)

func runTUI(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "tui", "")
	var g globalFlags
	var sf sheetFlags
	g.register(fs)
	sf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	a, err := loadApp(e, g, io.Discard)
	if err != nil {
		return err
	}
	// The terminal belongs to the TUI; logs go to a file in the data dir.
	logFile, err := openTUILog(a.settings.DataDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	a.logger = util.NewLogger(logFile, a.settings.Debug)
	slog.SetDefault(a.logger)

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tmpl, err := database.ResolveTemplate(ctx, db, sf.templateName(a, nil))
	if err != nil {
		return err
	}
	return tui.Run(ctx, tui.BuilderConfig{
		Store:        db,
		Template:     tmpl,
		SheetOptions: sf.options(a),
		OutputDir:    a.settings.OutputDir,
		Theme:        a.settings.Theme,
		Logger:       a.logger,
	})
}

func openTUILog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, config.AppName+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
