package relocation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"membership-portal/internal/catalog"
	"membership-portal/internal/domain"
	"membership-portal/internal/repository"
)

// CopyReport summarizes the child-family copy of one relocation.
type CopyReport struct {
	Copied  map[string]int `json:"copied"`
	Skipped []string       `json:"skipped,omitempty"`
}

// rootCopier duplicates the member root row into the target variant. The root
// copy is all-or-nothing: any failure here aborts the relocation.
type rootCopier struct {
	store repository.RelocationStore
	cat   *catalog.Reader
	now   func() time.Time
}

// Copy reconciles the source root row against the target root catalog and
// inserts it, guarding the tax id against duplicates in the target variant.
// Returns the new id alongside the source row for audit use.
func (c *rootCopier) Copy(ctx context.Context, sourceID int64, source, target domain.Variant) (int64, domain.Record, error) {
	sourceRow, err := c.store.FetchRow(ctx, source.RootTable(), sourceID)
	if err != nil {
		return 0, nil, err
	}

	sourceColumns, err := c.cat.Describe(ctx, source.RootTable())
	if err != nil {
		return 0, nil, err
	}
	targetColumns, err := c.cat.Describe(ctx, target.RootTable())
	if err != nil {
		return 0, nil, err
	}

	taxID := sourceRow.String(domain.BusinessKeyColumn)
	if taxID != "" {
		exists, err := c.store.BusinessKeyExists(ctx, target.RootTable(), domain.BusinessKeyColumn, taxID)
		if err != nil {
			return 0, nil, err
		}
		if exists {
			return 0, nil, fmt.Errorf("%w: %s in %s", domain.ErrConflict, taxID, target.Name)
		}
	}

	baseFields := EffectiveBaseFields(domain.RootBaseFields, sourceColumns, targetColumns)
	fields, values := Reconcile(sourceRow, baseFields, targetColumns, c.now)

	newID, err := c.store.InsertReturningID(ctx, target.RootTable(), fields, values)
	if err != nil {
		return 0, nil, err
	}
	return newID, sourceRow, nil
}

// childCopier moves the dependent family rows to the new owner. Unlike the
// root, a family whose target table lacks a portable column is skipped before
// any row is written and the relocation continues without it; any other
// failure is fatal.
type childCopier struct {
	store repository.RelocationStore
	cat   *catalog.Reader
}

// Copy rewrites every family's rows onto newID and inserts them into the
// target family tables. The skip decision is made from the target catalog
// alone: a failed insert would abort the surrounding transaction, so no
// statement may be issued against a column the target does not have.
func (c *childCopier) Copy(ctx context.Context, oldID, newID int64, source, target domain.Variant, families []domain.ChildFamily) (CopyReport, error) {
	report := CopyReport{Copied: make(map[string]int, len(families))}

	for _, family := range families {
		rows, err := c.store.FetchRowsByOwner(ctx, source.ChildTable(family), family.OwnerColumn, oldID)
		if err != nil {
			// The family table must at least be readable; an unreachable
			// family aborts the whole relocation.
			return report, err
		}
		if len(rows) == 0 {
			continue
		}

		targetTable := target.ChildTable(family)
		targetColumns, err := c.cat.Describe(ctx, targetTable)
		if err != nil {
			if errors.Is(err, domain.ErrCatalog) {
				log.Printf("[RELOCATE] skipping family %s: %s is absent from the target schema",
					family.Name, targetTable)
				report.Skipped = append(report.Skipped, family.Name)
				continue
			}
			return report, err
		}
		if missing, ok := missingPortableColumn(rows, family.PortableFields, targetColumns); ok {
			log.Printf("[RELOCATE] skipping family %s: target %s has no column %q",
				family.Name, targetTable, missing)
			report.Skipped = append(report.Skipped, family.Name)
			continue
		}

		copied := 0
		for _, row := range rows {
			fields := []string{family.OwnerColumn}
			values := []any{newID}
			for _, field := range family.PortableFields {
				if value, ok := row[field]; ok {
					fields = append(fields, field)
					values = append(values, value)
				}
			}
			if err := c.store.InsertRow(ctx, targetTable, fields, values); err != nil {
				return report, err
			}
			copied++
		}
		report.Copied[family.Name] = copied
	}

	return report, nil
}

// missingPortableColumn reports the first portable field carried by any source
// row that the target table has no column for.
func missingPortableColumn(rows []domain.Record, portable []string, targetColumns []domain.ColumnDescriptor) (string, bool) {
	known := make(map[string]struct{}, len(targetColumns))
	for _, col := range targetColumns {
		known[col.Name] = struct{}{}
	}
	for _, field := range portable {
		if _, ok := known[field]; ok {
			continue
		}
		for _, row := range rows {
			if _, carried := row[field]; carried {
				return field, true
			}
		}
	}
	return "", false
}
