// Package audit serves the relocation audit trail. Entries are appended by
// the relocation transaction itself; this service only reads them back.
package audit

import (
	"context"
	"fmt"

	"membership-portal/internal/domain"
	"membership-portal/internal/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service lists relocation audit entries for the admin screens.
type Service struct {
	repo repository.AuditRepository
}

// NewService creates an audit read service.
func NewService(repo repository.AuditRepository) *Service {
	return &Service{repo: repo}
}

// Recent returns the newest entries, capped at maxLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.RelocationAuditEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}
	return entries, nil
}
