package sheet

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/testutil"
	"github.com/akyairhashvil/eclb/internal/util"
)

func quietRenderer(t *testing.T, tmpl models.Template, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(tmpl, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func sampleLabels(n int) []models.Label {
	labels := make([]models.Label, n)
	for i := range labels {
		b := testutil.NewLabel()
		if i%3 == 0 {
			b.WithoutBands()
		}
		labels[i] = b.Label()
	}
	return labels
}

func TestRenderPages(t *testing.T) {
	r := quietRenderer(t, smallTemplate(), Options{})
	var buf bytes.Buffer
	pages, err := r.Render(&buf, sampleLabels(9))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if pages != 2 {
		t.Fatalf("pages = %d, want 2", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderDebugGuides(t *testing.T) {
	opts := DefaultOptions()
	opts.Debug = true
	opts.LabelsPerSticker = 1
	var buf bytes.Buffer
	pages, err := Render(&buf, sampleLabels(5), smallTemplate(), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if pages != 2 {
		t.Fatalf("pages = %d, want 2", pages)
	}
}

func TestRenderDoesNotMutateLabels(t *testing.T) {
	labels := sampleLabels(4)
	before := append([]models.Label(nil), labels...)
	if _, err := Render(io.Discard, labels, smallTemplate(), Options{}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := range labels {
		if labels[i].Text != before[i].Text || len(labels[i].Bands) != len(before[i].Bands) {
			t.Fatalf("label %d changed", i)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(io.Discard, nil, smallTemplate(), Options{}); !errors.Is(err, ErrNoLabels) {
		t.Fatalf("expected ErrNoLabels, got %v", err)
	}

	bad := smallTemplate()
	bad.LabelWidth = 0
	if _, err := Render(io.Discard, sampleLabels(1), bad, Options{}); err == nil {
		t.Fatalf("expected invalid template error")
	}

	if _, err := Render(io.Discard, sampleLabels(1), smallTemplate(), Options{LabelsPerSticker: 9}); err == nil {
		t.Fatalf("expected invalid options error")
	}

	opts := Options{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}
	if _, err := Render(io.Discard, sampleLabels(1), smallTemplate(), opts); err == nil {
		t.Fatalf("expected font load error")
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eclb_0.pdf")
	r := quietRenderer(t, smallTemplate(), Options{})
	if _, err := r.RenderFile(path, sampleLabels(3)); err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}

func TestOptionsDefaults(t *testing.T) {
	r := quietRenderer(t, smallTemplate(), Options{BoxSize: 0.2})
	opts := r.Options()
	if opts.BoxSize != 0.2 || opts.LabelsPerSticker != 2 || opts.FontSize != 14.4 || util.Deref(opts.BandOffset) != -0.05 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if util.Deref(opts.TextOffset) != 0.05 || util.Deref(opts.BoxSpacer) != 0.05 {
		t.Fatalf("unexpected offsets %+v", opts)
	}
}

func TestOptionsKeepExplicitZero(t *testing.T) {
	r := quietRenderer(t, smallTemplate(), Options{
		BoxSpacer:  util.Ptr(0.0),
		TextOffset: util.Ptr(0.0),
		BandOffset: util.Ptr(0.0),
	})
	opts := r.Options()
	if *opts.BoxSpacer != 0 || *opts.TextOffset != 0 || *opts.BandOffset != 0 {
		t.Fatalf("explicit zero replaced by defaults: spacer=%v text=%v band=%v",
			*opts.BoxSpacer, *opts.TextOffset, *opts.BandOffset)
	}
	var buf bytes.Buffer
	if _, err := r.Render(&buf, sampleLabels(2)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestOptionsRejectNegativeSpacer(t *testing.T) {
	_, err := NewRenderer(smallTemplate(), Options{BoxSpacer: util.Ptr(-0.1)}, nil)
	if err == nil {
		t.Fatalf("expected an error for a negative spacer")
	}
}

func TestTransliterate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"4.7k \u03a9", "4.7k Ohm"},
		{"4.7k \u2126", "4.7k Ohm"},
		{"47\u03bc F", "47\u00b5 F"},
		{"2.2k ohms", "2.2k ohms"},
	}
	for _, tc := range cases {
		if got := Transliterate(tc.in); got != tc.want {
			t.Fatalf("Transliterate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
