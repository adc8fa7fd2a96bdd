package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/datafile"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/sheet"
	"github.com/dustin/go-humanize"
)

// errPartial reports a run that produced output but skipped some inputs.
var errPartial = errors.New("some values could not be encoded")

// sheetFlags select the template and drawing options.
type sheetFlags struct {
	template   string
	perSticker int
	fontPath   string
	guides     bool
}

func (s *sheetFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.template, "template", "", "sheet template name (default: from settings)")
	fs.IntVar(&s.perSticker, "per-sticker", 0, "labels per sticker, 1-4 (default: from settings)")
	fs.StringVar(&s.fontPath, "font", "", "UTF-8 TrueType font for label text")
	fs.BoolVar(&s.guides, "guides", false, "draw rulers, margins and sticker outlines")
}

// options merges the flags over the loaded settings.
func (s *sheetFlags) options(a *app) sheet.Options {
	opts := sheet.DefaultOptions()
	opts.LabelsPerSticker = a.settings.LabelsPerSticker
	if s.perSticker > 0 {
		opts.LabelsPerSticker = s.perSticker
	}
	opts.FontPath = a.settings.FontPath
	if s.fontPath != "" {
		opts.FontPath = s.fontPath
	}
	opts.Debug = s.guides
	return opts
}

// templateName picks the first non-empty of the flag, the job and settings.
func (s *sheetFlags) templateName(a *app, job *datafile.Job) string {
	if s.template != "" {
		return s.template
	}
	if job != nil && strings.TrimSpace(job.Template) != "" {
		return job.Template
	}
	return a.settings.Template
}

func runBuild(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "build", "FILE")
	var g globalFlags
	var cf componentFlags
	var sf sheetFlags
	out := fs.String("out", "", "output PDF path (default: <output_dir>/eclb_<name>.pdf)")
	dry := fs.Bool("dry-run", false, "encode and report without writing a PDF or history")
	noRec := fs.Bool("no-history", false, "do not record the batch in history")
	g.register(fs)
	cf.register(fs)
	sf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireArgs(fs, 1, "input file"); err != nil {
		return err
	}
	cf.collect(fs)

	a, err := loadApp(e, g, nil)
	if err != nil {
		return err
	}

	src, err := datafile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	var base component.Options
	if src.Job != nil {
		if base, err = src.Job.Options(); err != nil {
			return err
		}
	}
	opts, err := cf.apply(base)
	if err != nil {
		return err
	}
	cfg, err := component.NewConfig(opts)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	enc := component.NewEncoder(cfg,
		component.WithLogger(a.logger),
		component.WithWorkers(a.settings.Workers),
	)
	results, err := enc.EncodeBatch(ctx, src.Values())
	if err != nil {
		return err
	}
	reportResults(a, src, results)
	labels := component.Labels(results)
	if len(labels) == 0 {
		return sheet.ErrNoLabels
	}

	if *dry {
		tmpl, err := lookupTemplate(ctx, a, sf.templateName(a, src.Job))
		if err != nil {
			return err
		}
		renderer, err := sheet.NewRenderer(tmpl, sf.options(a), a.logger)
		if err != nil {
			return err
		}
		per := renderer.Options().LabelsPerSticker
		printLabels(a, results)
		fmt.Fprintf(a.stdout, "%s on %s of %s (%s)\n",
			count(len(labels), "label"), count(sheet.SheetCount(len(labels), tmpl, per), "sheet"),
			tmpl.Name, cfg.Describe())
		return partial(results)
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tmpl, err := database.ResolveTemplate(ctx, db, sf.templateName(a, src.Job))
	if err != nil {
		return err
	}
	renderer, err := sheet.NewRenderer(tmpl, sf.options(a), a.logger)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		stem := strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))
		path = filepath.Join(a.settings.OutputDir, config.OutputPrefix+stem+".pdf")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	pages, err := renderer.RenderFile(path, labels)
	if err != nil {
		return err
	}
	size := ""
	if info, err := os.Stat(path); err == nil {
		size = ", " + humanize.Bytes(uint64(info.Size()))
	}
	fmt.Fprintf(a.stdout, "wrote %s (%s, %s%s)\n", path, count(len(labels), "label"), count(pages, "page"), size)

	if !*noRec {
		rec := database.NewBatchRecord(cfg, tmpl.Name, &path, results)
		id, err := db.RecordBatch(ctx, rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "recorded batch %s\n", id)
	}
	return partial(results)
}

// lookupTemplate resolves name without creating the history database.
// Built-ins come from the shipped table; user templates are read only when
// the database already exists.
func lookupTemplate(ctx context.Context, a *app, name string) (models.Template, error) {
	if t, err := sheet.Builtin(name); err == nil {
		return t, nil
	}
	if _, err := os.Stat(a.settings.DBPath()); err != nil {
		return models.Template{}, fmt.Errorf("resolve template: %w: %q", sheet.ErrUnknownTemplate, name)
	}
	db, err := a.openDB(ctx)
	if err != nil {
		return models.Template{}, err
	}
	defer db.Close()
	return database.ResolveTemplate(ctx, db, name)
}

// reportResults prints a diagnostic for every failed or colorless value,
// citing its line in the input file.
func reportResults(a *app, src *datafile.Source, results []component.Result) {
	for i, r := range results {
		line := src.Entries[i].Line
		switch {
		case r.Err != nil:
			fmt.Fprintf(a.stderr, "%s:%d: skipped: %v\n", src.Path, line, r.Err)
		case r.Warn != nil:
			fmt.Fprintf(a.stderr, "%s:%d: text only: %v\n", src.Path, line, r.Warn)
		}
	}
}

func printLabels(a *app, results []component.Result) {
	for _, r := range results {
		if !r.OK() {
			continue
		}
		fmt.Fprintf(a.stdout, "%-12s %-14s %s\n", r.Input, r.Label.Text, strings.Join(r.Label.Bands, " "))
	}
}

func partial(results []component.Result) error {
	if t := component.Summarize(results); t.Failed > 0 {
		return fmt.Errorf("%w: %s skipped", errPartial, count(t.Failed, "value"))
	}
	return nil
}
