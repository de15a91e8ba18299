package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"membership-portal/internal/db"
	"membership-portal/internal/domain"
)

// Postgres SQLSTATE classes the engine reacts to.
const (
	pgUndefinedColumn = "42703"
	pgUniqueViolation = "23505"
)

// Store runs relocation work units against Postgres, one transaction each.
type Store struct {
	conn *db.Connection
}

// NewStore creates a pgx-backed relocation store.
func NewStore(conn *db.Connection) *Store {
	return &Store{conn: conn}
}

// InTx opens a transaction and binds a RelocationStore to it for fn.
func (s *Store) InTx(ctx context.Context, fn func(RelocationStore) error) error {
	return s.conn.WithTx(ctx, func(tx pgx.Tx) error {
		return fn(&txStore{tx: tx})
	})
}

// txStore is the transaction-scoped implementation of RelocationStore. All
// table and column names it interpolates come from the static variant
// registry or the table's own catalog, and are sanitized regardless.
type txStore struct {
	tx pgx.Tx
}

func (s *txStore) DescribeTable(ctx context.Context, table string) ([]domain.ColumnDescriptor, error) {
	rows, err := s.tx.Query(ctx, `
		SELECT column_name, data_type, is_nullable = 'YES', column_default IS NOT NULL
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, fmt.Errorf("%w: describe %s: %v", domain.ErrCatalog, table, err)
	}
	defer rows.Close()

	var columns []domain.ColumnDescriptor
	for rows.Next() {
		var col domain.ColumnDescriptor
		if err := rows.Scan(&col.Name, &col.DataType, &col.Nullable, &col.HasDefault); err != nil {
			return nil, fmt.Errorf("%w: describe %s: %v", domain.ErrCatalog, table, err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: describe %s: %v", domain.ErrCatalog, table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table %s does not exist", domain.ErrCatalog, table)
	}
	return columns, nil
}

func (s *txStore) FetchRow(ctx context.Context, table string, id int64) (domain.Record, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{domain.IDColumn}.Sanitize())
	rows, err := s.tx.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch row from %s: %w", table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, table, id)
		}
		return nil, fmt.Errorf("failed to fetch row from %s: %w", table, err)
	}
	return domain.Record(row), nil
}

func (s *txStore) FetchRowsByOwner(ctx context.Context, table, ownerColumn string, ownerID int64) ([]domain.Record, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{ownerColumn}.Sanitize())
	rows, err := s.tx.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %s: %w", table, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %s: %w", table, err)
	}
	records := make([]domain.Record, len(maps))
	for i, m := range maps {
		records[i] = domain.Record(m)
	}
	return records, nil
}

func (s *txStore) InsertReturningID(ctx context.Context, table string, fields []string, values []any) (int64, error) {
	sql := buildInsert(table, fields) + " RETURNING " + pgx.Identifier{domain.IDColumn}.Sanitize()
	var id int64
	if err := s.tx.QueryRow(ctx, sql, values...).Scan(&id); err != nil {
		return 0, classifyExecError(table, err)
	}
	return id, nil
}

func (s *txStore) InsertRow(ctx context.Context, table string, fields []string, values []any) error {
	if _, err := s.tx.Exec(ctx, buildInsert(table, fields), values...); err != nil {
		return classifyExecError(table, err)
	}
	return nil
}

func (s *txStore) BusinessKeyExists(ctx context.Context, table, column, key string) (bool, error) {
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{column}.Sanitize())
	var exists bool
	if err := s.tx.QueryRow(ctx, sql, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s.%s: %w", table, column, err)
	}
	return exists, nil
}

func (s *txStore) DeleteRowsByOwner(ctx context.Context, table, ownerColumn string, ownerID int64) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{ownerColumn}.Sanitize())
	if _, err := s.tx.Exec(ctx, sql, ownerID); err != nil {
		return fmt.Errorf("failed to delete rows from %s: %w", table, err)
	}
	return nil
}

func (s *txStore) DeleteRow(ctx context.Context, table string, id int64) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{domain.IDColumn}.Sanitize())
	tag, err := s.tx.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete row from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s id %d", domain.ErrNotFound, table, id)
	}
	return nil
}

func (s *txStore) AppendAudit(ctx context.Context, entry domain.RelocationAuditEntry) error {
	description, err := json.Marshal(auditDescription{
		OldType:     entry.OldVariant,
		NewType:     entry.NewVariant,
		OldID:       entry.OldRootID,
		NewID:       entry.NewRootID,
		BusinessKey: entry.TaxID,
		DisplayName: entry.CompanyName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal audit description: %w", err)
	}

	_, err = s.tx.Exec(ctx, `
		INSERT INTO relocation_audit (id, actor_id, event_type, target_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ActorID, entry.EventType, entry.NewRootID, description, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// auditDescription is the structured payload stored in the audit row.
type auditDescription struct {
	OldType     string `json:"oldType"`
	NewType     string `json:"newType"`
	OldID       int64  `json:"oldId"`
	NewID       int64  `json:"newId"`
	BusinessKey string `json:"businessKey"`
	DisplayName string `json:"displayName"`
}

func buildInsert(table string, fields []string) string {
	columns := make([]string, len(fields))
	placeholders := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = pgx.Identifier{field}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "))
}

func classifyExecError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedColumn:
			return fmt.Errorf("%w: %s: %s", domain.ErrUnknownColumn, table, pgErr.Message)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrConflict, table, pgErr.Message)
		}
	}
	return fmt.Errorf("failed to insert into %s: %w", table, err)
}
