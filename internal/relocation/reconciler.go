// Package relocation moves one member company, root row plus all dependent
// child rows, from one membership variant's table family to another, in a
// single transaction.
package relocation

import (
	"time"

	"membership-portal/internal/domain"
)

// Reconcile maps a source row onto a target table shape. Base fields pass
// through from the source (nil when absent). Every remaining target column
// that is NOT NULL without a default, other than the primary key, gets a
// synthesized value by type class. Source-only fields are dropped; the
// narrowing is intentional and silent. Output order follows baseFields, then
// the target catalog.
func Reconcile(source domain.Record, baseFields []string, target []domain.ColumnDescriptor, now func() time.Time) ([]string, []any) {
	fields := make([]string, 0, len(baseFields))
	values := make([]any, 0, len(baseFields))
	included := make(map[string]bool, len(baseFields))

	for _, field := range baseFields {
		if included[field] {
			continue
		}
		included[field] = true
		fields = append(fields, field)
		if value, ok := source[field]; ok {
			values = append(values, value)
		} else {
			values = append(values, nil)
		}
	}

	for _, col := range target {
		if included[col.Name] || col.Name == domain.IDColumn {
			continue
		}
		if col.Nullable || col.HasDefault {
			continue
		}
		included[col.Name] = true
		fields = append(fields, col.Name)
		values = append(values, defaultFor(col.DataType, now))
	}

	return fields, values
}

// defaultFor synthesizes a value that satisfies a required column the source
// variant never carried.
func defaultFor(dataType string, now func() time.Time) any {
	switch domain.ClassifyType(dataType) {
	case domain.TypeNumeric:
		return int64(0)
	case domain.TypeTemporal:
		return now()
	default:
		return ""
	}
}

// EffectiveBaseFields widens the declared base set with the actual catalog
// intersection of the two root tables, then restricts the result to columns
// the target really has. A column both variants share is copied even if the
// declared list has fallen behind the schemas.
func EffectiveBaseFields(declared []string, source, target []domain.ColumnDescriptor) []string {
	targetSet := make(map[string]bool, len(target))
	for _, col := range target {
		targetSet[col.Name] = true
	}
	sourceSet := make(map[string]bool, len(source))
	for _, col := range source {
		sourceSet[col.Name] = true
	}

	included := make(map[string]bool)
	fields := make([]string, 0, len(declared))
	for _, field := range declared {
		if field == domain.IDColumn || !targetSet[field] || included[field] {
			continue
		}
		included[field] = true
		fields = append(fields, field)
	}
	for _, col := range target {
		if col.Name == domain.IDColumn || included[col.Name] || !sourceSet[col.Name] {
			continue
		}
		included[col.Name] = true
		fields = append(fields, col.Name)
	}
	return fields
}
