package members

import (
	"context"
	"errors"
	"testing"

	"membership-portal/internal/domain"
)

type stubRepo struct {
	lastLimit  int
	lastOffset int
	members    []domain.MemberSummary
}

func (r *stubRepo) List(_ context.Context, _ domain.Variant, limit, offset int) ([]domain.MemberSummary, int, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	return r.members, len(r.members), nil
}

func (r *stubRepo) GetByID(_ context.Context, _ domain.Variant, id int64) (domain.MemberSummary, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.MemberSummary{}, domain.ErrNotFound
}

func TestListClampsPaging(t *testing.T) {
	repo := &stubRepo{}
	service := NewService(repo)

	if _, err := service.List(context.Background(), "ordinary", 0, -5); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if repo.lastLimit != defaultPageSize || repo.lastOffset != 0 {
		t.Fatalf("expected clamped paging, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}

	if _, err := service.List(context.Background(), "ordinary", 10_000, 50); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if repo.lastLimit != maxPageSize || repo.lastOffset != 50 {
		t.Fatalf("expected capped limit, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestListRejectsUnknownVariant(t *testing.T) {
	service := NewService(&stubRepo{})
	_, err := service.List(context.Background(), "honorary", 10, 0)
	if !errors.Is(err, domain.ErrUnsupportedVariant) {
		t.Fatalf("expected unsupported variant, got %v", err)
	}
}

func TestGetMissingMember(t *testing.T) {
	service := NewService(&stubRepo{})
	_, err := service.Get(context.Background(), "ordinary", 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
