package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/google/uuid"
)

// BatchRecord is everything needed to store one encoded run.
type BatchRecord struct {
	Component  string
	Settings   string
	Template   string
	OutputPath *string
	WarnCount  int
	ErrorCount int
	Labels     []models.BatchLabel
}

// NewBatchRecord builds a record from encoder results. Failed inputs are
// counted but not stored as labels.
func NewBatchRecord(cfg component.Config, template string, outputPath *string, results []component.Result) BatchRecord {
	tally := component.Summarize(results)
	rec := BatchRecord{
		Component:  string(cfg.Kind()),
		Settings:   cfg.Describe(),
		Template:   template,
		OutputPath: outputPath,
		WarnCount:  tally.Warned,
		ErrorCount: tally.Failed,
	}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		rec.Labels = append(rec.Labels, models.BatchLabel{
			Position: len(rec.Labels),
			Input:    r.Input,
			Text:     r.Label.Text,
			Bands:    r.Label.Bands,
		})
	}
	return rec
}

// RecordBatch stores rec and its labels in one transaction and returns the
// new batch ID. Label positions are assigned in slice order.
func (d *Database) RecordBatch(ctx context.Context, rec BatchRecord) (string, error) {
	id := uuid.NewString()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO batches (id, component, settings, template, output_path, label_count, warn_count, error_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, rec.Component, rec.Settings, rec.Template, toNullableArg(rec.OutputPath),
			len(rec.Labels), rec.WarnCount, rec.ErrorCount,
		); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, "INSERT INTO batch_labels (batch_id, position, input, text, bands) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, l := range rec.Labels {
			var bands sql.NullString
			if len(l.Bands) > 0 {
				bands = nullableString(util.ListToJSON(l.Bands))
			}
			if _, err := stmt.ExecContext(ctx, id, i, l.Input, l.Text, bands); err != nil {
				return fmt.Errorf("label %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapErr(EntityBatch, "record", id, err)
	}
	d.logger.Debug("batch recorded", "id", id, "labels", len(rec.Labels))
	return id, nil
}

func scanBatch(row rowScanner) (models.Batch, error) {
	var b models.Batch
	var output sql.NullString
	err := row.Scan(&b.ID, &b.Component, &b.Settings, &b.Template, &output,
		&b.LabelCount, &b.WarnCount, &b.ErrorCount, &b.CreatedAt)
	b.OutputPath = fromNullString(output)
	return b, err
}

// FindBatches runs a batch query.
func (d *Database) FindBatches(ctx context.Context, q *BatchQuery) ([]models.Batch, error) {
	query, args := q.Build()
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Batch, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityBatch, "list", "", err)
		}
		defer rows.Close()

		var batches []models.Batch
		for rows.Next() {
			b, err := scanBatch(rows)
			if err != nil {
				return nil, wrapErr(EntityBatch, "list", "", err)
			}
			batches = append(batches, b)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityBatch, "list", "", err)
		}
		return batches, nil
	})
}

// ListBatches returns the most recent batches, newest first. A limit of zero
// or less returns all of them.
func (d *Database) ListBatches(ctx context.Context, limit int) ([]models.Batch, error) {
	return d.FindBatches(ctx, NewBatchQuery().Limit(limit))
}

// GetBatch returns one batch by ID.
func (d *Database) GetBatch(ctx context.Context, id string) (models.Batch, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Batch, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+batchColumns+" FROM batches WHERE id = ?", id)
		b, err := scanBatch(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Batch{}, wrapErr(EntityBatch, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Batch{}, wrapErr(EntityBatch, "get", id, err)
		}
		return b, nil
	})
}

// GetBatchLabels returns the labels of batch id in their original order.
func (d *Database) GetBatchLabels(ctx context.Context, id string) ([]models.BatchLabel, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.BatchLabel, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT batch_id, position, input, text, bands FROM batch_labels WHERE batch_id = ? ORDER BY position ASC", id)
		if err != nil {
			return nil, wrapErr(EntityBatch, "labels", id, err)
		}
		defer rows.Close()

		var labels []models.BatchLabel
		for rows.Next() {
			var l models.BatchLabel
			var bands sql.NullString
			if err := rows.Scan(&l.BatchID, &l.Position, &l.Input, &l.Text, &bands); err != nil {
				return nil, wrapErr(EntityBatch, "labels", id, err)
			}
			if l.Bands, err = util.JSONToList(bands.String); err != nil {
				return nil, wrapErr(EntityBatch, "labels", id, err)
			}
			labels = append(labels, l)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityBatch, "labels", id, err)
		}
		return labels, nil
	})
}

// DeleteBatch removes a batch and its labels.
func (d *Database) DeleteBatch(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM batch_labels WHERE batch_id = ?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapErr(EntityBatch, "delete", id, err)
}
