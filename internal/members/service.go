// Package members serves the typed admin views of member rows. The relocation
// engine works on raw records; everything here goes through the summary
// projection instead.
package members

import (
	"context"
	"fmt"

	"membership-portal/internal/domain"
	"membership-portal/internal/repository"
)

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

// Service lists member companies per variant.
type Service struct {
	repo repository.MemberRepository
}

// NewService creates a member listing service.
func NewService(repo repository.MemberRepository) *Service {
	return &Service{repo: repo}
}

// Page is one page of member summaries.
type Page struct {
	Members    []domain.MemberSummary `json:"members"`
	TotalCount int                    `json:"totalCount"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}

// List returns one page of the variant's member register.
func (s *Service) List(ctx context.Context, variantName string, limit, offset int) (Page, error) {
	variant, err := domain.VariantByName(variantName)
	if err != nil {
		return Page{}, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	members, total, err := s.repo.List(ctx, variant, limit, offset)
	if err != nil {
		return Page{}, fmt.Errorf("failed to list %s members: %w", variant.Name, err)
	}
	return Page{Members: members, TotalCount: total, Limit: limit, Offset: offset}, nil
}

// Get returns one member summary.
func (s *Service) Get(ctx context.Context, variantName string, id int64) (domain.MemberSummary, error) {
	variant, err := domain.VariantByName(variantName)
	if err != nil {
		return domain.MemberSummary{}, err
	}
	return s.repo.GetByID(ctx, variant, id)
}
