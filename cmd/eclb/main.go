package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/akyairhashvil/eclb/internal/config"
	"github.com/akyairhashvil/eclb/internal/database"
	"github.com/akyairhashvil/eclb/internal/tui"
	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/gertd/go-pluralize"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitPartial = 3
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"build", "encode a values or YAML job file into a PDF label sheet", runBuild},
	{"preview", "print labels with color swatches in the terminal", runPreview},
	{"tui", "interactive label builder", runTUI},
	{"history", "list, show, delete, export or import recorded batches", runHistory},
	{"templates", "list, add or delete sheet templates", runTemplates},
	{"version", "print version information", runVersion},
}

// env is the process environment a command runs in.
type env struct {
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], &env{stdout: os.Stdout, stderr: os.Stderr}))
}

func run(ctx context.Context, args []string, e *env) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(e.stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}
	name := args[0]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(ctx, e, args[1:])
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		case errors.Is(err, errUsage):
			fmt.Fprintf(e.stderr, "eclb %s: %v\n", name, err)
			return exitUsage
		case errors.Is(err, errPartial):
			fmt.Fprintf(e.stderr, "eclb %s: %v\n", name, err)
			return exitPartial
		default:
			fmt.Fprintf(e.stderr, "eclb %s: %v\n", name, err)
			return exitFailed
		}
	}
	fmt.Fprintf(e.stderr, "eclb: unknown command %q\n\n", name)
	usage(e.stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eclb <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'eclb <command> -h' for command flags.")
}

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet("eclb "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: eclb %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and wraps flag errors as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// globalFlags are accepted by every command that touches settings.
type globalFlags struct {
	configPath string
	debug      bool
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "settings file (default: config.yaml in the user config dir)")
	fs.BoolVar(&g.debug, "debug", false, "verbose logging")
}

// app is the loaded settings and logger shared by commands.
type app struct {
	*env
	settings *config.Settings
	logger   *slog.Logger
}

func loadApp(e *env, g globalFlags, logTo io.Writer) (*app, error) {
	s, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.debug {
		s.Debug = true
	}
	if logTo == nil {
		logTo = e.stderr
	}
	logger := util.NewLogger(logTo, s.Debug)
	slog.SetDefault(logger)
	return &app{env: e, settings: s, logger: logger}, nil
}

func (a *app) openDB(ctx context.Context) (*database.Database, error) {
	return database.Open(ctx, a.settings.DBPath(), a.logger)
}

func runVersion(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "version", "")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s %s\n", config.AppName, tui.VersionLabel())
	return nil
}

func requireArgs(fs *flag.FlagSet, min int, what string) error {
	if fs.NArg() < min {
		return fmt.Errorf("%w: missing %s", errUsage, what)
	}
	return nil
}

var plurals = pluralize.NewClient()

// count formats n with word pluralized to match, e.g. "3 labels".
func count(n int, word string) string {
	return plurals.Pluralize(word, n, true)
}
