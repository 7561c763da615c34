package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/societydesk/receipt-verifier/internal/repository"
)

// Service is a tiny façade over the audit repository that produces XLSX
// bytes for society-admin exports.
type Service struct {
	verificationsRepo repository.VerificationRepository
	logger            *slog.Logger
}

func NewService(repo repository.VerificationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{verificationsRepo: repo, logger: logger}
}

// ExportAuditXLSX returns an XLSX workbook (as bytes) for the given society
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all audit rows for the society.
func (s *Service) ExportAuditXLSX(ctx context.Context, societyID string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.verificationsRepo.List(ctx, societyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verifications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Member",
		"Block",
		"Flat",
		"Purpose",
		"Claimed Amount",
		"Extracted Amount",
		"Confidence",
		"Match Score",
		"Decision",
		"Reason",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range rows {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, val)
		}

		write(1, v.CreatedAt.UTC().Format("2006-01-02"))
		write(2, v.MemberID)
		write(3, v.ClaimBlockNumber)
		write(4, v.ClaimFlatNumber)
		write(5, v.ClaimPurpose)
		write(6, v.ClaimAmount)
		if v.ExtractedAmount != nil {
			write(7, fmt.Sprintf("%.2f", *v.ExtractedAmount))
		} else {
			write(7, "")
		}
		write(8, fmt.Sprintf("%.2f", v.Confidence))
		write(9, fmt.Sprintf("%.2f", v.MatchScore))
		write(10, v.Status)
		write(11, v.Reason)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 22) // member
	_ = f.SetColWidth(sheet, "E", "E", 16) // purpose
	_ = f.SetColWidth(sheet, "K", "K", 24) // reason

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.audit.ok",
		"society_id", societyID,
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
