package relocation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"membership-portal/internal/catalog"
	"membership-portal/internal/domain"
	"membership-portal/internal/repository"
)

// Request identifies the member to relocate and where to.
type Request struct {
	SourceID      int64
	SourceVariant string
	TargetVariant string
	ActorID       string
}

// Result reports a committed relocation.
type Result struct {
	NewRootID  int64
	NewVariant string
	Report     CopyReport
}

// Service orchestrates relocations. The whole sequence for one request runs
// inside a single transaction; the source member either moves completely or
// not at all.
type Service struct {
	db  repository.TxRunner
	now func() time.Time
}

// NewService creates a relocation service.
func NewService(db repository.TxRunner) *Service {
	return &Service{db: db, now: time.Now}
}

// Relocate moves one member from the source variant to the target variant:
// copy the root, copy every child family, delete the source rows, append the
// audit entry, commit. Any failure inside the transaction rolls everything
// back. Calling it again after a committed run fails with domain.ErrNotFound,
// since the source row no longer exists.
func (s *Service) Relocate(ctx context.Context, req Request) (Result, error) {
	source, target, err := validate(req)
	if err != nil {
		return Result{}, err
	}

	var result Result
	err = s.db.InTx(ctx, func(store repository.RelocationStore) error {
		cat := catalog.NewReader(store)
		roots := &rootCopier{store: store, cat: cat, now: s.now}
		children := &childCopier{store: store, cat: cat}

		newID, sourceRow, err := roots.Copy(ctx, req.SourceID, source, target)
		if err != nil {
			return err
		}

		report, err := children.Copy(ctx, req.SourceID, newID, source, target, domain.ChildFamilies)
		if err != nil {
			return err
		}

		// Source children go first, in reverse dependency order, then the
		// root itself. No reliance on store-level cascade.
		for i := len(domain.ChildFamilies) - 1; i >= 0; i-- {
			family := domain.ChildFamilies[i]
			if err := store.DeleteRowsByOwner(ctx, source.ChildTable(family), family.OwnerColumn, req.SourceID); err != nil {
				return err
			}
		}
		if err := store.DeleteRow(ctx, source.RootTable(), req.SourceID); err != nil {
			return err
		}

		entry := domain.RelocationAuditEntry{
			ID:          uuid.New(),
			ActorID:     req.ActorID,
			EventType:   domain.EventTypeRelocate,
			OldVariant:  source.Name,
			NewVariant:  target.Name,
			OldRootID:   req.SourceID,
			NewRootID:   newID,
			TaxID:       sourceRow.String(domain.BusinessKeyColumn),
			CompanyName: sourceRow.String(domain.DisplayNameColumn),
			CreatedAt:   s.now(),
		}
		if err := store.AppendAudit(ctx, entry); err != nil {
			return err
		}

		result = Result{NewRootID: newID, NewVariant: target.Name, Report: report}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Printf("[RELOCATE] member %d moved %s -> %s as %d (copied %v, skipped %v) by %s",
		req.SourceID, source.Name, target.Name, result.NewRootID,
		result.Report.Copied, result.Report.Skipped, req.ActorID)
	return result, nil
}

// validate rejects bad input before any storage access.
func validate(req Request) (domain.Variant, domain.Variant, error) {
	if req.SourceID <= 0 {
		return domain.Variant{}, domain.Variant{}, &domain.ValidationError{Field: "sourceId", Reason: "must be a positive id"}
	}
	if req.ActorID == "" {
		return domain.Variant{}, domain.Variant{}, &domain.ValidationError{Field: "actorId", Reason: "missing actor identity"}
	}
	source, err := domain.VariantByName(req.SourceVariant)
	if err != nil {
		return domain.Variant{}, domain.Variant{}, err
	}
	target, err := domain.VariantByName(req.TargetVariant)
	if err != nil {
		return domain.Variant{}, domain.Variant{}, err
	}
	if source.Name == target.Name {
		return domain.Variant{}, domain.Variant{}, fmt.Errorf("%w: source and target are both %s", domain.ErrUnsupportedVariant, source.Name)
	}
	return source, target, nil
}
