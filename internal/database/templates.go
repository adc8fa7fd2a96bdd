package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/sheet"
	"github.com/akyairhashvil/eclb/internal/util"
)

const templateColumns = "id, name, sheet_width, sheet_height, upper_margin, left_margin, middle_padding, label_width, label_height, row_count, col_count, built_in"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (models.Template, error) {
	var t models.Template
	var builtIn int
	err := row.Scan(&t.ID, &t.Name, &t.SheetWidth, &t.SheetHeight, &t.UpperMargin, &t.LeftMargin,
		&t.MiddlePadding, &t.LabelWidth, &t.LabelHeight, &t.Rows, &t.Cols, &builtIn)
	t.BuiltIn = util.IntToBool(builtIn)
	return t, err
}

// seedTemplates inserts or refreshes the shipped templates.
func (d *Database) seedTemplates(ctx context.Context) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, t := range sheet.Builtins() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO templates
				(name, sheet_width, sheet_height, upper_margin, left_margin, middle_padding, label_width, label_height, row_count, col_count, built_in)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
				ON CONFLICT(name) DO UPDATE SET
					sheet_width = excluded.sheet_width,
					sheet_height = excluded.sheet_height,
					upper_margin = excluded.upper_margin,
					left_margin = excluded.left_margin,
					middle_padding = excluded.middle_padding,
					label_width = excluded.label_width,
					label_height = excluded.label_height,
					row_count = excluded.row_count,
					col_count = excluded.col_count,
					built_in = 1`,
				t.Name, t.SheetWidth, t.SheetHeight, t.UpperMargin, t.LeftMargin, t.MiddlePadding,
				t.LabelWidth, t.LabelHeight, t.Rows, t.Cols,
			); err != nil {
				return wrapErr(EntityTemplate, "seed", t.Name, err)
			}
		}
		return nil
	})
}

// ListTemplates returns every template, built-ins first.
func (d *Database) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Template, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT "+templateColumns+" FROM templates ORDER BY built_in DESC, name ASC")
		if err != nil {
			return nil, wrapErr(EntityTemplate, "list", "", err)
		}
		defer rows.Close()

		var templates []models.Template
		for rows.Next() {
			t, err := scanTemplate(rows)
			if err != nil {
				return nil, wrapErr(EntityTemplate, "list", "", err)
			}
			templates = append(templates, t)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityTemplate, "list", "", err)
		}
		return templates, nil
	})
}

// GetTemplate looks a template up by name, case-insensitively.
func (d *Database) GetTemplate(ctx context.Context, name string) (models.Template, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Template, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+templateColumns+" FROM templates WHERE name = ?", name)
		t, err := scanTemplate(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Template{}, wrapErr(EntityTemplate, "get", name, ErrNotFound)
		}
		if err != nil {
			return models.Template{}, wrapErr(EntityTemplate, "get", name, err)
		}
		return t, nil
	})
}

// SaveTemplate validates t and inserts or replaces the user template with
// the same name. Built-in templates cannot be overwritten.
func (d *Database) SaveTemplate(ctx context.Context, t models.Template) (int64, error) {
	t.Name = strings.ToLower(strings.TrimSpace(t.Name))
	if err := sheet.ValidateTemplate(t); err != nil {
		return 0, wrapErr(EntityTemplate, "save", t.Name, err)
	}
	var id int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var builtIn int
		err := tx.QueryRowContext(ctx, "SELECT built_in FROM templates WHERE name = ?", t.Name).Scan(&builtIn)
		switch {
		case err == nil && util.IntToBool(builtIn):
			return ErrBuiltinReadOnly
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			return err
		}
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO templates
			(name, sheet_width, sheet_height, upper_margin, left_margin, middle_padding, label_width, label_height, row_count, col_count, built_in)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
			ON CONFLICT(name) DO UPDATE SET
				sheet_width = excluded.sheet_width,
				sheet_height = excluded.sheet_height,
				upper_margin = excluded.upper_margin,
				left_margin = excluded.left_margin,
				middle_padding = excluded.middle_padding,
				label_width = excluded.label_width,
				label_height = excluded.label_height,
				row_count = excluded.row_count,
				col_count = excluded.col_count
			RETURNING id`,
			t.Name, t.SheetWidth, t.SheetHeight, t.UpperMargin, t.LeftMargin, t.MiddlePadding,
			t.LabelWidth, t.LabelHeight, t.Rows, t.Cols,
		).Scan(&id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, wrapErr(EntityTemplate, "save", t.Name, err)
	}
	d.logger.Debug("template saved", "name", t.Name, "id", id)
	return id, nil
}

// DeleteTemplate removes a user template.
func (d *Database) DeleteTemplate(ctx context.Context, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	t, err := d.GetTemplate(ctx, name)
	if err != nil {
		return err
	}
	if t.BuiltIn {
		return wrapErr(EntityTemplate, "delete", name, ErrBuiltinReadOnly)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		if _, err := d.DB.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", t.ID); err != nil {
			return wrapErr(EntityTemplate, "delete", name, err)
		}
		return nil
	})
}

// ResolveTemplate returns the stored template called name, falling back to
// the shipped set when the store does not have it.
func ResolveTemplate(ctx context.Context, store TemplateRepository, name string) (models.Template, error) {
	if store != nil {
		t, err := store.GetTemplate(ctx, name)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return models.Template{}, err
		}
	}
	t, err := sheet.Builtin(name)
	if err != nil {
		return models.Template{}, fmt.Errorf("resolve template: %w", err)
	}
	return t, nil
}
