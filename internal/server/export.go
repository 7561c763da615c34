package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	verifypb "github.com/societydesk/receipt-verifier/gen/proto/verify/v1"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/utils"
)

// trimAmount renders an extracted amount for transport without trailing
// noise from float formatting.
func trimAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// parseDateWindow reads the optional from/to date strings shared by the
// audit RPCs. Only from -> from..today; only to -> beginning..to.
func parseDateWindow(fromDate, toDate string) (*time.Time, *time.Time, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(fromDate); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(toDate); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	if fromPtr != nil && toPtr == nil {
		today := time.Now().UTC()
		to := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toPtr = &to
	}
	return fromPtr, toPtr, nil
}

func (s *VerifyService) ListAudit(ctx context.Context, req *verifypb.ListAuditRequest) (*verifypb.ListAuditResponse, error) {
	fromPtr, toPtr, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	rows, err := s.auditRepo.List(ctx, req.GetSocietyId(), fromPtr, toPtr)
	if err != nil {
		s.logger.Warn("list audit failed", zap.Error(err))
		return nil, common.InternalError("list audit failed")
	}

	out := make([]*verifypb.Verification, 0, len(rows))
	for _, v := range rows {
		out = append(out, utils.ToPBVerification(v))
	}
	return &verifypb.ListAuditResponse{Verifications: out}, nil
}

func (s *VerifyService) ExportAudit(ctx context.Context, req *verifypb.ExportAuditRequest) (*verifypb.ExportAuditResponse, error) {
	if s.exportSvc == nil {
		return nil, common.InternalError("export service not configured")
	}
	fromPtr, toPtr, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.exportSvc.ExportAuditXLSX(ctx, req.GetSocietyId(), fromPtr, toPtr)
	if err != nil {
		s.logger.Warn("export audit failed", zap.Error(err))
		return nil, common.InternalError("export audit failed")
	}

	name := fmt.Sprintf("verifications-%s.xlsx", time.Now().UTC().Format("20060102"))
	return &verifypb.ExportAuditResponse{Xlsx: data, Filename: name}, nil
}
