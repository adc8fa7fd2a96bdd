package sheet

import (
	"errors"
	"testing"
)

func TestBuiltinsValidate(t *testing.T) {
	for _, tmpl := range Builtins() {
		if err := ValidateTemplate(tmpl); err != nil {
			t.Fatalf("builtin %s invalid: %v", tmpl.Name, err)
		}
		if !tmpl.BuiltIn {
			t.Fatalf("builtin %s not flagged", tmpl.Name)
		}
	}
}

func TestBuiltinLookup(t *testing.T) {
	tmpl, err := Builtin(" AVERY-5167 ")
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if tmpl.Stickers() != 80 {
		t.Fatalf("Stickers = %d, want 80", tmpl.Stickers())
	}
	if _, err := Builtin("avery-9999"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestValidateTemplateRejects(t *testing.T) {
	tmpl := smallTemplate()
	tmpl.Rows = 0
	if err := ValidateTemplate(tmpl); err == nil {
		t.Fatalf("expected zero rows to be rejected")
	}

	tmpl = smallTemplate()
	tmpl.Cols = 3
	if err := ValidateTemplate(tmpl); !errors.Is(err, ErrTemplateOverrun) {
		t.Fatalf("expected overrun, got %v", err)
	}

	tmpl = smallTemplate()
	tmpl.Name = ""
	if err := ValidateTemplate(tmpl); err == nil {
		t.Fatalf("expected unnamed template to be rejected")
	}
}
