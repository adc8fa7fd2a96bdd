package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/testutil"
	"github.com/akyairhashvil/eclb/internal/util"
)

type TestDataBuilder struct {
	t        *testing.T
	ctx      context.Context
	db       *Database
	batchIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithTemplate(name string) *TestDataBuilder {
	b.t.Helper()
	if _, err := b.db.SaveTemplate(b.ctx, testTemplate(name)); err != nil {
		b.t.Fatalf("SaveTemplate failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) WithBatches(count, labelsPer int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		rec := BatchRecord{
			Component:  "resistor",
			Settings:   "resistor 4-band ±5% Ω",
			Template:   "avery-5160",
			OutputPath: util.Ptr(fmt.Sprintf("/tmp/eclb_%d.pdf", i)),
		}
		for j := 0; j < labelsPer; j++ {
			rec.Labels = append(rec.Labels, testutil.NewLabel().
				WithInput(fmt.Sprintf("%d", (j+1)*100)).
				WithText(fmt.Sprintf("%d Ω", (j+1)*100)).
				WithBands("brown", "black", "brown", "gold").
				Build())
		}
		id, err := b.db.RecordBatch(b.ctx, rec)
		if err != nil {
			b.t.Fatalf("RecordBatch failed: %v", err)
		}
		b.batchIDs = append(b.batchIDs, id)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) BatchIDs() []string {
	return b.batchIDs
}

func testTemplate(name string) models.Template {
	return testutil.NewTemplate().
		WithName(name).
		WithSheetSize(8.5, 11).
		WithMargins(0.5, 0.25).
		WithPadding(0.25).
		WithLabelSize(2, 1).
		WithGrid(10, 3).
		Build()
}
