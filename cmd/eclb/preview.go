package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/datafile"
	"github.com/akyairhashvil/eclb/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

func runPreview(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "preview", "VALUE...")
	var g globalFlags
	var cf componentFlags
	file := fs.String("file", "", "read values from a values or YAML job file")
	color := fs.String("color", "auto", "swatches: auto, always or never")
	g.register(fs)
	cf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cf.collect(fs)

	a, err := loadApp(e, g, nil)
	if err != nil {
		return err
	}

	var base component.Options
	values := fs.Args()
	if *file != "" {
		src, err := datafile.Load(*file)
		if err != nil {
			return err
		}
		if src.Job != nil {
			if base, err = src.Job.Options(); err != nil {
				return err
			}
		}
		values = append(src.Values(), values...)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: no values given", errUsage)
	}

	opts, err := cf.apply(base)
	if err != nil {
		return err
	}
	cfg, err := component.NewConfig(opts)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	enc := component.NewEncoder(cfg, component.WithLogger(a.logger), component.WithWorkers(a.settings.Workers))
	results, err := enc.EncodeBatch(ctx, values)
	if err != nil {
		return err
	}

	swatches, err := useColor(*color, a.stdout)
	if err != nil {
		return err
	}
	if swatches {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
	fmt.Fprintln(a.stdout, tui.CurrentTheme.Header.Render(tui.KindTitle(cfg.Kind())+"  "+cfg.Describe()))
	width := terminalWidth(a.stdout)
	for _, r := range results {
		fmt.Fprintln(a.stdout, previewLine(r, swatches, width))
	}
	return partial(results)
}

// previewLine renders one result as "input  text  bands".
func previewLine(r component.Result, swatches bool, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s ", r.Input)
	switch {
	case r.Err != nil:
		b.WriteString("error: " + r.Err.Error())
	case !r.Label.HasBands():
		b.WriteString(r.Label.Text)
		if r.Warn != nil {
			b.WriteString("  (no color code)")
		}
	case swatches:
		fmt.Fprintf(&b, "%-14s %s  %s", r.Label.Text, tui.RenderBands(r.Label.Bands), tui.RenderBandNames(r.Label.Bands))
	default:
		fmt.Fprintf(&b, "%-14s %s", r.Label.Text, tui.RenderBandNames(r.Label.Bands))
	}
	line := b.String()
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, config.TruncationSuffix)
	}
	return line
}

// useColor resolves the -color mode against w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("%w: -color must be auto, always or never", errUsage)
	}
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
