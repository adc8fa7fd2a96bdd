package database

import (
	"errors"
	"testing"
)

func TestIsIgnorableMigrationErr(t *testing.T) {
	if !isIgnorableMigrationErr(errors.New("duplicate column name: warn_count")) {
		t.Fatalf("expected duplicate column error to be ignorable")
	}
	if isIgnorableMigrationErr(errors.New("no such table: batches")) {
		t.Fatalf("expected non-duplicate error to be non-ignorable")
	}
	if isIgnorableMigrationErr(nil) {
		t.Fatalf("nil is not a migration error")
	}
}
