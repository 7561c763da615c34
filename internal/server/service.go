package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	verifypb "github.com/societydesk/receipt-verifier/gen/proto/verify/v1"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/export"
	"github.com/societydesk/receipt-verifier/internal/extract"
	"github.com/societydesk/receipt-verifier/internal/repository"
	"github.com/societydesk/receipt-verifier/internal/verify"
)

type VerifyService struct {
	verifypb.UnimplementedVerifyServiceServer
	verifier  *verify.Verifier
	auditRepo repository.VerificationRepository
	exportSvc *export.Service
	logger    *zap.Logger
}

func NewVerifyService(verifier *verify.Verifier, auditRepo repository.VerificationRepository, exportSvc *export.Service, logger *zap.Logger) *VerifyService {
	return &VerifyService{verifier: verifier, auditRepo: auditRepo, exportSvc: exportSvc, logger: logger}
}

// validateClaim checks the same contract the claim JSON schema enforces:
// all four claim fields must be present. The audit schema rejects empty
// claim fields, so letting a partial claim through here would decide the
// request and then fail to record it.
func validateClaim(claim verify.ManualClaim) error {
	if strings.TrimSpace(claim.Amount) == "" {
		return common.InvalidArgumentError("claim.amount is required")
	}
	if strings.TrimSpace(claim.BlockNumber) == "" {
		return common.InvalidArgumentError("claim.block_number is required")
	}
	if strings.TrimSpace(claim.FlatNumber) == "" {
		return common.InvalidArgumentError("claim.flat_number is required")
	}
	if strings.TrimSpace(claim.Purpose) == "" {
		return common.InvalidArgumentError("claim.purpose is required")
	}
	return nil
}

// VerifyReceipt runs the verification pipeline for one submission and
// appends an audit row. The pipeline itself never fails; only malformed
// requests and audit-read problems surface as gRPC errors.
func (s *VerifyService) VerifyReceipt(ctx context.Context, req *verifypb.VerifyReceiptRequest) (*verifypb.VerifyReceiptResponse, error) {
	if len(req.GetFileContent()) == 0 {
		return nil, common.InvalidArgumentError("file_content is required")
	}
	claim := req.GetClaim()
	if claim == nil {
		return nil, common.InvalidArgumentError("claim is required")
	}
	manual := verify.ManualClaim{
		Amount:      claim.GetAmount(),
		BlockNumber: claim.GetBlockNumber(),
		FlatNumber:  claim.GetFlatNumber(),
		Purpose:     claim.GetPurpose(),
	}
	if err := validateClaim(manual); err != nil {
		return nil, err
	}

	doc := extract.RawDocument{
		Content:  req.GetFileContent(),
		MIMEType: req.GetMimeType(),
	}

	ctx = common.WithRequestID(ctx, uuid.New().String())
	ctx = common.WithSocietyID(ctx, req.GetSocietyId())
	ctx = common.WithMemberID(ctx, req.GetMemberId())

	res := s.verifier.VerifyReceipt(ctx, doc, manual)

	auditID := ""
	row, err := s.auditRepo.Record(ctx, auditRequest(req, manual, res))
	if err != nil {
		// The decision stands even when the audit write fails.
		s.logger.Warn("audit record failed", zap.Error(err))
	} else {
		auditID = row.ID.String()
	}

	return &verifypb.VerifyReceiptResponse{
		Extraction: toPBExtraction(res.Extraction),
		MatchScore: res.MatchScore,
		Approved:   res.Approved,
		Status:     string(res.Status),
		AuditId:    auditID,
	}, nil
}

func auditRequest(req *verifypb.VerifyReceiptRequest, claim verify.ManualClaim, res verify.Result) *repository.RecordRequest {
	return &repository.RecordRequest{
		SocietyID:            req.GetSocietyId(),
		MemberID:             req.GetMemberId(),
		ClaimAmount:          claim.Amount,
		ClaimBlockNumber:     claim.BlockNumber,
		ClaimFlatNumber:      claim.FlatNumber,
		ClaimPurpose:         claim.Purpose,
		ExtractedAmount:      res.Extraction.Fields.Amount,
		ExtractedBlockNumber: res.Extraction.Fields.BlockNumber,
		ExtractedFlatNumber:  res.Extraction.Fields.FlatNumber,
		ExtractedPaymentDate: res.Extraction.Fields.PaymentDate,
		ExtractedPurpose:     res.Extraction.Fields.Purpose,
		RawText:              res.Extraction.RawText,
		Confidence:           res.Extraction.Confidence,
		MatchScore:           res.MatchScore,
		Status:               string(res.Status),
		Reason:               string(res.Extraction.Reason),
	}
}

func toPBExtraction(ex verify.ExtractionResult) *verifypb.Extraction {
	pb := &verifypb.Extraction{
		RawText:     ex.RawText,
		Confidence:  ex.Confidence,
		BlockNumber: ex.Fields.BlockNumber,
		FlatNumber:  ex.Fields.FlatNumber,
		PaymentDate: ex.Fields.PaymentDate,
		Purpose:     ex.Fields.Purpose,
		Reason:      string(ex.Reason),
	}
	if ex.Fields.Amount != nil {
		pb.Amount = trimAmount(*ex.Fields.Amount)
	}
	return pb
}
