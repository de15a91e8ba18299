// Package export renders admin downloads of the member register and the
// relocation log as xlsx workbooks.
package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"membership-portal/internal/domain"
	"membership-portal/internal/repository"
)

const sheetName = "Sheet1"

// Service builds xlsx exports from the read repositories.
type Service struct {
	members repository.MemberRepository
	audits  repository.AuditRepository

	pageSize int
	now      func() time.Time
}

// Option customizes the export service.
type Option func(*Service)

// WithPageSize sets how many member rows are fetched per page.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewService creates an export service.
func NewService(members repository.MemberRepository, audits repository.AuditRepository, opts ...Option) *Service {
	service := &Service{
		members:  members,
		audits:   audits,
		pageSize: 1000,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// MemberRegister renders the full member register of one variant.
func (s *Service) MemberRegister(ctx context.Context, variantName string) ([]byte, string, error) {
	variant, err := domain.VariantByName(variantName)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headers := []any{"ID", "Tax ID", "Company Name", "Email", "Status", "Registered At"}
	if err := writeRow(f, 1, headers); err != nil {
		return nil, "", err
	}

	rowIndex := 2
	offset := 0
	for {
		page, total, err := s.members.List(ctx, variant, s.pageSize, offset)
		if err != nil {
			return nil, "", fmt.Errorf("failed to page members: %w", err)
		}
		for _, m := range page {
			values := []any{m.ID, m.TaxID, m.CompanyName, m.Email, m.Status, m.CreatedAt.Format("2006-01-02 15:04:05")}
			if err := writeRow(f, rowIndex, values); err != nil {
				return nil, "", err
			}
			rowIndex++
		}
		offset += len(page)
		if len(page) == 0 || offset >= total {
			break
		}
	}

	payload, err := toBytes(f)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s-members-%s.xlsx", variant.Name, s.now().Format("20060102-150405"))
	return payload, filename, nil
}

// RelocationLog renders the recent relocation audit trail.
func (s *Service) RelocationLog(ctx context.Context, limit int) ([]byte, string, error) {
	if limit <= 0 {
		limit = 500
	}
	entries, err := s.audits.ListRecent(ctx, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load audit trail: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headers := []any{"When", "Actor", "Company", "Tax ID", "From", "To", "Old ID", "New ID"}
	if err := writeRow(f, 1, headers); err != nil {
		return nil, "", err
	}
	for i, entry := range entries {
		values := []any{
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.ActorID,
			entry.CompanyName,
			entry.TaxID,
			entry.OldVariant,
			entry.NewVariant,
			entry.OldRootID,
			entry.NewRootID,
		}
		if err := writeRow(f, i+2, values); err != nil {
			return nil, "", err
		}
	}

	payload, err := toBytes(f)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("relocations-%s.xlsx", s.now().Format("20060102-150405"))
	return payload, filename, nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
