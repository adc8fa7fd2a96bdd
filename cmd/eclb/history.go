package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/dustin/go-humanize"
)

func runHistory(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "history", "")
	var g globalFlags
	g.register(fs)
	limit := fs.Int("limit", config.DefaultHistoryLimit, "number of batches to list")
	kind := fs.String("component", "", "only list batches of this component kind")
	tmpl := fs.String("template", "", "only list batches printed on this template")
	show := fs.String("show", "", "print the labels of batch ID")
	del := fs.String("delete", "", "delete batch ID")
	export := fs.String("export", "", "write the whole history to a JSON archive")
	importPath := fs.String("import", "", "merge a JSON archive into the history")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *limit < 1 || *limit > config.MaxHistoryLimit {
		return fmt.Errorf("%w: -limit must be between 1 and %d", errUsage, config.MaxHistoryLimit)
	}

	a, err := loadApp(e, g, nil)
	if err != nil {
		return err
	}
	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case *show != "":
		return showBatch(ctx, a, db, *show)
	case *del != "":
		if err := db.DeleteBatch(ctx, *del); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "deleted batch %s\n", *del)
		return nil
	case *export != "":
		return exportHistory(ctx, a, db, *export)
	case *importPath != "":
		return importHistory(ctx, a, db, *importPath)
	}

	q := database.NewBatchQuery().Limit(*limit)
	if *kind != "" {
		q.WhereComponent(strings.ToLower(strings.TrimSpace(*kind)))
	}
	if *tmpl != "" {
		q.WhereTemplate(*tmpl)
	}
	batches, err := db.FindBatches(ctx, q)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		fmt.Fprintln(a.stdout, "no batches recorded")
		return nil
	}
	for _, b := range batches {
		fmt.Fprintln(a.stdout, batchLine(b))
	}
	return nil
}

func batchLine(b models.Batch) string {
	line := fmt.Sprintf("%s  %-14s %-10s %-11s %-12s %s",
		shortID(b.ID), humanize.Time(b.CreatedAt), b.Component, count(b.LabelCount, "label"), b.Template, b.Settings)
	if b.WarnCount > 0 || b.ErrorCount > 0 {
		line += fmt.Sprintf("  [%d warn, %d err]", b.WarnCount, b.ErrorCount)
	}
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func showBatch(ctx context.Context, a *app, db *database.Database, id string) error {
	b, err := db.GetBatch(ctx, id)
	if err != nil {
		return err
	}
	labels, err := db.GetBatchLabels(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "batch     %s\n", b.ID)
	fmt.Fprintf(a.stdout, "created   %s (%s)\n", b.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(b.CreatedAt))
	fmt.Fprintf(a.stdout, "settings  %s\n", b.Settings)
	fmt.Fprintf(a.stdout, "template  %s\n", b.Template)
	fmt.Fprintf(a.stdout, "output    %s\n", util.Deref(b.OutputPath))
	fmt.Fprintf(a.stdout, "labels    %d (%d warn, %d err)\n\n", b.LabelCount, b.WarnCount, b.ErrorCount)
	for _, l := range labels {
		fmt.Fprintf(a.stdout, "%4d  %-12s %-14s %s\n", l.Position+1, l.Input, l.Text, strings.Join(l.Bands, " "))
	}
	return nil
}

func exportHistory(ctx context.Context, a *app, db *database.Database, path string) error {
	payload, err := db.ExportArchive(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	fmt.Fprintf(a.stdout, "exported history to %s (%s)\n", path, humanize.Bytes(uint64(len(payload))))
	return nil
}

func importHistory(ctx context.Context, a *app, db *database.Database, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	if err := db.ImportArchive(ctx, payload); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "imported %s\n", path)
	return nil
}
