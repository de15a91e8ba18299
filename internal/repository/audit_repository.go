package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"membership-portal/internal/db"
	"membership-portal/internal/domain"
)

// auditRepository implements AuditRepository interface
type auditRepository struct {
	conn *db.Connection
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(conn *db.Connection) AuditRepository {
	return &auditRepository{conn: conn}
}

// ListRecent retrieves the newest relocation audit entries.
func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]domain.RelocationAuditEntry, error) {
	rows, err := r.conn.Pool.Query(ctx, `
		SELECT id, actor_id, event_type, description, created_at
		FROM relocation_audit
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RelocationAuditEntry
	for rows.Next() {
		var entry domain.RelocationAuditEntry
		var description []byte
		if err := rows.Scan(&entry.ID, &entry.ActorID, &entry.EventType, &description, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}

		var detail auditDescription
		if err := json.Unmarshal(description, &detail); err != nil {
			return nil, fmt.Errorf("failed to decode audit description for entry %s: %w", entry.ID, err)
		}
		entry.OldVariant = detail.OldType
		entry.NewVariant = detail.NewType
		entry.OldRootID = detail.OldID
		entry.NewRootID = detail.NewID
		entry.TaxID = detail.BusinessKey
		entry.CompanyName = detail.DisplayName

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}
