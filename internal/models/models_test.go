package models

import "testing"

func TestLabelHasBands(t *testing.T) {
	var l Label
	if l.HasBands() {
		t.Fatalf("expected zero label to have no bands")
	}
	l = Label{Text: "470 Ω", Bands: []string{"yellow", "purple", "brown", "gold"}}
	if !l.HasBands() {
		t.Fatalf("expected label with bands")
	}
	l.Bands = []string{}
	if l.HasBands() {
		t.Fatalf("expected empty band slice to report no bands")
	}
}

func TestTemplateStickers(t *testing.T) {
	tmpl := Template{Rows: 10, Cols: 3}
	if got := tmpl.Stickers(); got != 30 {
		t.Fatalf("Stickers() = %d, want 30", got)
	}
}

func TestBatchZeroValues(t *testing.T) {
	var b Batch
	if b.OutputPath != nil {
		t.Fatalf("expected nil output path by default")
	}
	if !b.CreatedAt.IsZero() {
		t.Fatalf("expected zero CreatedAt")
	}
}
