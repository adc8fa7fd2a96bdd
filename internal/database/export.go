package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/util"
)

const archiveVersion = 1

type ExportTemplate struct {
	Name          string  `json:"name"`
	SheetWidth    float64 `json:"sheet_width"`
	SheetHeight   float64 `json:"sheet_height"`
	UpperMargin   float64 `json:"upper_margin"`
	LeftMargin    float64 `json:"left_margin"`
	MiddlePadding float64 `json:"middle_padding"`
	LabelWidth    float64 `json:"label_width"`
	LabelHeight   float64 `json:"label_height"`
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
}

type ExportLabel struct {
	Input string   `json:"input"`
	Text  string   `json:"text"`
	Bands []string `json:"bands,omitempty"`
}

type ExportBatch struct {
	ID         string        `json:"id"`
	Component  string        `json:"component"`
	Settings   string        `json:"settings"`
	Template   string        `json:"template"`
	OutputPath *string       `json:"output_path,omitempty"`
	WarnCount  int           `json:"warn_count"`
	ErrorCount int           `json:"error_count"`
	CreatedAt  string        `json:"created_at"`
	Labels     []ExportLabel `json:"labels"`
}

type ExportSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Archive is the portable JSON form of the history database. Built-in
// templates are not included.
type Archive struct {
	Version   int              `json:"version"`
	Templates []ExportTemplate `json:"templates"`
	Batches   []ExportBatch    `json:"batches"`
	Settings  []ExportSetting  `json:"settings"`
}

func (d *Database) exportSettings(ctx context.Context) ([]ExportSetting, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]ExportSetting, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT key, COALESCE(value, '') FROM settings ORDER BY key")
		if err != nil {
			return nil, wrapErr(EntitySetting, "export", "", err)
		}
		defer rows.Close()
		var out []ExportSetting
		for rows.Next() {
			var s ExportSetting
			if err := rows.Scan(&s.Key, &s.Value); err != nil {
				return nil, wrapErr(EntitySetting, "export", "", err)
			}
			out = append(out, s)
		}
		return out, rows.Err()
	})
}

// ExportArchive serialises user templates, every batch with its labels, and
// the settings table.
func (d *Database) ExportArchive(ctx context.Context) ([]byte, error) {
	templates, err := d.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	archive := Archive{Version: archiveVersion}
	for _, t := range templates {
		if t.BuiltIn {
			continue
		}
		archive.Templates = append(archive.Templates, ExportTemplate{
			Name:          t.Name,
			SheetWidth:    t.SheetWidth,
			SheetHeight:   t.SheetHeight,
			UpperMargin:   t.UpperMargin,
			LeftMargin:    t.LeftMargin,
			MiddlePadding: t.MiddlePadding,
			LabelWidth:    t.LabelWidth,
			LabelHeight:   t.LabelHeight,
			Rows:          t.Rows,
			Cols:          t.Cols,
		})
	}

	batches, err := d.FindBatches(ctx, NewBatchQuery().OrderBy("created_at ASC, rowid ASC"))
	if err != nil {
		return nil, err
	}
	for _, b := range batches {
		labels, err := d.GetBatchLabels(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		eb := ExportBatch{
			ID:         b.ID,
			Component:  b.Component,
			Settings:   b.Settings,
			Template:   b.Template,
			OutputPath: b.OutputPath,
			WarnCount:  b.WarnCount,
			ErrorCount: b.ErrorCount,
			CreatedAt:  b.CreatedAt.UTC().Format(time.DateTime),
			Labels:     make([]ExportLabel, 0, len(labels)),
		}
		for _, l := range labels {
			eb.Labels = append(eb.Labels, ExportLabel{Input: l.Input, Text: l.Text, Bands: l.Bands})
		}
		archive.Batches = append(archive.Batches, eb)
	}

	if archive.Settings, err = d.exportSettings(ctx); err != nil {
		return nil, err
	}
	return json.MarshalIndent(archive, "", "  ")
}

// ImportArchive loads an archive produced by ExportArchive. Existing rows
// with the same key are replaced; built-in templates are never touched.
func (d *Database) ImportArchive(ctx context.Context, payload []byte) error {
	var archive Archive
	if err := json.Unmarshal(payload, &archive); err != nil {
		return fmt.Errorf("import archive: %w", err)
	}
	if archive.Version != archiveVersion {
		return fmt.Errorf("import archive: unsupported version %d", archive.Version)
	}

	for _, et := range archive.Templates {
		t := models.Template{
			Name:          et.Name,
			SheetWidth:    et.SheetWidth,
			SheetHeight:   et.SheetHeight,
			UpperMargin:   et.UpperMargin,
			LeftMargin:    et.LeftMargin,
			MiddlePadding: et.MiddlePadding,
			LabelWidth:    et.LabelWidth,
			LabelHeight:   et.LabelHeight,
			Rows:          et.Rows,
			Cols:          et.Cols,
		}
		if _, err := d.SaveTemplate(ctx, t); err != nil {
			return fmt.Errorf("import template %s: %w", et.Name, err)
		}
	}

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, b := range archive.Batches {
			if strings.TrimSpace(b.ID) == "" {
				return fmt.Errorf("import batch: missing id")
			}
			if _, err := tx.ExecContext(ctx, "DELETE FROM batch_labels WHERE batch_id = ?", b.ID); err != nil {
				return fmt.Errorf("import batch %s: %w", b.ID, err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO batches
				(id, component, settings, template, output_path, label_count, warn_count, error_count, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
				b.ID, b.Component, b.Settings, b.Template, toNullableArg(b.OutputPath),
				len(b.Labels), b.WarnCount, b.ErrorCount, nilIfEmpty(b.CreatedAt),
			); err != nil {
				return fmt.Errorf("import batch %s: %w", b.ID, err)
			}
			for i, l := range b.Labels {
				var bands sql.NullString
				if len(l.Bands) > 0 {
					bands = nullableString(util.ListToJSON(l.Bands))
				}
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO batch_labels (batch_id, position, input, text, bands) VALUES (?, ?, ?, ?, ?)",
					b.ID, i, l.Input, l.Text, bands,
				); err != nil {
					return fmt.Errorf("import batch %s label %d: %w", b.ID, i, err)
				}
			}
		}
		for _, s := range archive.Settings {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				s.Key, s.Value,
			); err != nil {
				return fmt.Errorf("import setting %s: %w", s.Key, err)
			}
		}
		return nil
	})
}

func nilIfEmpty(value string) interface{} {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
