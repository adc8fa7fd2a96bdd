package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestInitDB_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path(), nil)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer again.Close()

	templates, err := again.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected built-ins to be seeded once, got %d templates", len(templates))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data", "eclb.db")
	db, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Fatalf("Path = %q, want %q", db.Path(), path)
	}
}

func TestBuiltinTemplatesSeeded(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	tmpl, err := db.GetTemplate(ctx, "Avery-5160")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if !tmpl.BuiltIn || tmpl.Rows != 10 || tmpl.Cols != 3 || tmpl.LabelWidth != 2.625 {
		t.Fatalf("unexpected template %+v", tmpl)
	}
}

func TestTemplateCRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.SaveTemplate(ctx, testTemplate("Shop-Bins"))
	if err != nil {
		t.Fatalf("SaveTemplate failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("SaveTemplate returned zero ID")
	}

	updated := testTemplate("shop-bins")
	updated.Rows = 5
	again, err := db.SaveTemplate(ctx, updated)
	if err != nil {
		t.Fatalf("SaveTemplate update failed: %v", err)
	}
	if again != id {
		t.Fatalf("update changed ID from %d to %d", id, again)
	}

	got, err := db.GetTemplate(ctx, "shop-bins")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if got.Rows != 5 || got.BuiltIn {
		t.Fatalf("unexpected template %+v", got)
	}

	templates, err := db.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) != 3 || !templates[0].BuiltIn || templates[2].Name != "shop-bins" {
		t.Fatalf("unexpected template order %+v", templates)
	}

	if err := db.DeleteTemplate(ctx, "shop-bins"); err != nil {
		t.Fatalf("DeleteTemplate failed: %v", err)
	}
	if _, err := db.GetTemplate(ctx, "shop-bins"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTemplateRejects(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.SaveTemplate(ctx, testTemplate("avery-5160")); !errors.Is(err, ErrBuiltinReadOnly) {
		t.Fatalf("expected ErrBuiltinReadOnly, got %v", err)
	}
	if err := db.DeleteTemplate(ctx, "avery-5167"); !errors.Is(err, ErrBuiltinReadOnly) {
		t.Fatalf("expected ErrBuiltinReadOnly on delete, got %v", err)
	}

	tooWide := testTemplate("too-wide")
	tooWide.Cols = 9
	if _, err := db.SaveTemplate(ctx, tooWide); err == nil {
		t.Fatalf("expected overrun template to be rejected")
	}

	var opErr *OpError
	_, err := db.GetTemplate(ctx, "missing")
	if !errors.As(err, &opErr) || opErr.Resource != EntityTemplate || opErr.ID != "missing" {
		t.Fatalf("expected OpError for missing template, got %v", err)
	}
}

func TestResolveTemplate(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithTemplate("custom").Build()

	if got, err := ResolveTemplate(ctx, db, "custom"); err != nil || got.Name != "custom" {
		t.Fatalf("ResolveTemplate(custom) = %+v, %v", got, err)
	}
	if got, err := ResolveTemplate(ctx, nil, "avery-5167"); err != nil || got.Cols != 4 {
		t.Fatalf("ResolveTemplate without store = %+v, %v", got, err)
	}
	if _, err := ResolveTemplate(ctx, db, "nope"); err == nil {
		t.Fatalf("expected unknown template error")
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "last_kind"); ok {
		t.Fatalf("expected unset setting")
	}
	if err := db.SetSetting(ctx, "last_kind", "capacitor"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "last_kind", "inductor"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	if v, ok := db.GetSetting(ctx, "last_kind"); !ok || v != "inductor" {
		t.Fatalf("GetSetting = %q, %v", v, ok)
	}
}
