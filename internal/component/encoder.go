package component

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/akyairhashvil/eclb/internal/models"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of encoding one input value. Err means the value
// could not be encoded and Label is empty. Warn is a recoverable problem:
// Label.Text is set but Label.Bands is nil.
type Result struct {
	Input string
	Label models.Label
	Err   error
	Warn  error
}

// OK reports whether the value produced a label.
func (r Result) OK() bool {
	return r.Err == nil
}

// Encoder turns raw values into labels under one shared Config. It holds no
// mutable state and is safe for concurrent use.
type Encoder struct {
	cfg     Config
	plural  Pluralizer
	logger  *slog.Logger
	workers int
}

// EncoderOption customises an Encoder.
type EncoderOption func(*Encoder)

// WithPluralizer replaces the default English pluralizer.
func WithPluralizer(p Pluralizer) EncoderOption {
	return func(e *Encoder) { e.plural = p }
}

// WithLogger sets the logger used for recoverable diagnostics.
func WithLogger(l *slog.Logger) EncoderOption {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers bounds the number of values encoded concurrently by
// EncodeBatch. Values below one fall back to GOMAXPROCS.
func WithWorkers(n int) EncoderOption {
	return func(e *Encoder) { e.workers = n }
}

func NewEncoder(cfg Config, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.plural == nil {
		e.plural = NewPluralizer()
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

func (e *Encoder) Config() Config {
	return e.cfg
}

// Encode parses raw and builds its label.
func (e *Encoder) Encode(raw string) Result {
	res := Result{Input: raw}

	v, err := ParseValue(raw)
	if err != nil {
		res.Err = err
		return res
	}

	text, err := LabelName(v, e.cfg, e.plural)
	if err != nil {
		res.Err = err
		return res
	}
	res.Label.Text = text

	if !e.cfg.ShowColorCodes() {
		return res
	}

	leading := LeadingDigits(v.Text, e.cfg.DigitCount())
	bands, err := ColorBands(v.Float, leading, e.cfg)
	if err != nil {
		var miss *ColorLookupError
		if !errors.As(err, &miss) {
			res.Label = models.Label{}
			res.Err = err
			return res
		}
		e.logger.Debug("ignoring color bands", "value", raw, "leading", leading, "err", err)
		res.Warn = err
		return res
	}
	res.Label.Bands = bands
	return res
}

// EncodeBatch encodes every raw value concurrently and returns the results
// in input order. Per-value failures are reported in the results; the
// returned error is non-nil only when ctx is cancelled.
func (e *Encoder) EncodeBatch(ctx context.Context, raws []string) ([]Result, error) {
	results := make([]Result, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, raw := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Encode(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Labels returns the labels of the successful results, in order.
func Labels(results []Result) []models.Label {
	labels := make([]models.Label, 0, len(results))
	for _, r := range results {
		if r.OK() {
			labels = append(labels, r.Label)
		}
	}
	return labels
}

// Tally counts results by outcome.
type Tally struct {
	OK, Warned, Failed int
}

func Summarize(results []Result) Tally {
	var t Tally
	for _, r := range results {
		switch {
		case r.Err != nil:
			t.Failed++
		case r.Warn != nil:
			t.Warned++
			t.OK++
		default:
			t.OK++
		}
	}
	return t
}
