// Package catalog reads table column metadata from the store. A Reader caches
// per instance and instances live for one relocation run only, since the
// schema may change between runs.
package catalog

import (
	"context"

	"membership-portal/internal/domain"
)

// Source is anything that can describe a table's columns.
type Source interface {
	DescribeTable(ctx context.Context, table string) ([]domain.ColumnDescriptor, error)
}

// Reader caches column catalogs for the duration of one run.
type Reader struct {
	source Source
	cache  map[string][]domain.ColumnDescriptor
}

// NewReader creates a run-scoped catalog reader over source.
func NewReader(source Source) *Reader {
	return &Reader{
		source: source,
		cache:  make(map[string][]domain.ColumnDescriptor),
	}
}

// Describe returns the ordered column catalog of a table, reading through the
// source on first use.
func (r *Reader) Describe(ctx context.Context, table string) ([]domain.ColumnDescriptor, error) {
	if columns, ok := r.cache[table]; ok {
		return columns, nil
	}
	columns, err := r.source.DescribeTable(ctx, table)
	if err != nil {
		return nil, err
	}
	r.cache[table] = columns
	return columns, nil
}
