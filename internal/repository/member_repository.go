package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"membership-portal/internal/db"
	"membership-portal/internal/domain"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	conn *db.Connection
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(conn *db.Connection) MemberRepository {
	return &memberRepository{conn: conn}
}

// List retrieves member summaries for one variant, newest first.
func (r *memberRepository) List(ctx context.Context, variant domain.Variant, limit, offset int) ([]domain.MemberSummary, int, error) {
	sql := fmt.Sprintf(`
		SELECT id, tax_id, company_name, email, status, created_at, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, pgx.Identifier{variant.RootTable()}.Sanitize())

	rows, err := r.conn.Pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []domain.MemberSummary
	totalCount := 0
	for rows.Next() {
		var m domain.MemberSummary
		if err := rows.Scan(&m.ID, &m.TaxID, &m.CompanyName, &m.Email, &m.Status, &m.CreatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan member row: %w", err)
		}
		m.Variant = variant.Name
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	return members, totalCount, nil
}

// GetByID retrieves one member summary by ID
func (r *memberRepository) GetByID(ctx context.Context, variant domain.Variant, id int64) (domain.MemberSummary, error) {
	sql := fmt.Sprintf(`
		SELECT id, tax_id, company_name, email, status, created_at
		FROM %s
		WHERE id = $1`, pgx.Identifier{variant.RootTable()}.Sanitize())

	var m domain.MemberSummary
	err := r.conn.Pool.QueryRow(ctx, sql, id).Scan(&m.ID, &m.TaxID, &m.CompanyName, &m.Email, &m.Status, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MemberSummary{}, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, variant.RootTable(), id)
		}
		return domain.MemberSummary{}, fmt.Errorf("failed to get member: %w", err)
	}
	m.Variant = variant.Name
	return m, nil
}
