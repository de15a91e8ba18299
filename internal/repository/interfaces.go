package repository

import (
	"context"

	"membership-portal/internal/domain"
)

// RelocationStore is the storage surface the relocation engine drives. One
// instance is bound to one open transaction; nothing else shares it.
type RelocationStore interface {
	// DescribeTable reports the ordered column catalog of a table. A missing
	// table is an error wrapping domain.ErrCatalog.
	DescribeTable(ctx context.Context, table string) ([]domain.ColumnDescriptor, error)

	// FetchRow loads one row by primary key. Absence wraps domain.ErrNotFound.
	FetchRow(ctx context.Context, table string, id int64) (domain.Record, error)

	// FetchRowsByOwner loads all rows keyed by an owner id column.
	FetchRowsByOwner(ctx context.Context, table, ownerColumn string, ownerID int64) ([]domain.Record, error)

	// InsertReturningID inserts a row and returns the generated primary key.
	InsertReturningID(ctx context.Context, table string, fields []string, values []any) (int64, error)

	// InsertRow inserts a row without reading back a key. A column the table
	// does not have wraps domain.ErrUnknownColumn.
	InsertRow(ctx context.Context, table string, fields []string, values []any) error

	// BusinessKeyExists reports whether any row of table holds key in column.
	BusinessKeyExists(ctx context.Context, table, column, key string) (bool, error)

	// DeleteRowsByOwner removes all rows keyed by an owner id column.
	DeleteRowsByOwner(ctx context.Context, table, ownerColumn string, ownerID int64) error

	// DeleteRow removes one row by primary key.
	DeleteRow(ctx context.Context, table string, id int64) error

	// AppendAudit writes one relocation audit entry.
	AppendAudit(ctx context.Context, entry domain.RelocationAuditEntry) error
}

// TxRunner opens a transaction and hands the engine a store bound to it. The
// transaction commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	InTx(ctx context.Context, fn func(RelocationStore) error) error
}

// MemberRepository serves the typed admin projections of member rows.
type MemberRepository interface {
	List(ctx context.Context, variant domain.Variant, limit, offset int) ([]domain.MemberSummary, int, error)
	GetByID(ctx context.Context, variant domain.Variant, id int64) (domain.MemberSummary, error)
}

// AuditRepository reads back relocation audit entries.
type AuditRepository interface {
	ListRecent(ctx context.Context, limit int) ([]domain.RelocationAuditEntry, error)
}
