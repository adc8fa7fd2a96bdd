package database

import (
	"fmt"
	"strings"
)

const batchColumns = "id, component, settings, template, output_path, label_count, warn_count, error_count, created_at"

type BatchQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewBatchQuery() *BatchQuery {
	return &BatchQuery{columns: batchColumns, orderBy: "created_at DESC, rowid DESC"}
}

func (q *BatchQuery) Where(filter string, args ...interface{}) *BatchQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *BatchQuery) WhereComponent(component string) *BatchQuery {
	if component == "" {
		return q
	}
	return q.Where("component = ?", component)
}

func (q *BatchQuery) WhereTemplate(template string) *BatchQuery {
	if template == "" {
		return q
	}
	return q.Where("template = ?", template)
}

func (q *BatchQuery) OrderBy(orderBy string) *BatchQuery {
	q.orderBy = orderBy
	return q
}

func (q *BatchQuery) Limit(limit int) *BatchQuery {
	q.limit = limit
	return q
}

func (q *BatchQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM batches", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
