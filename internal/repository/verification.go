package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/societydesk/receipt-verifier/gen/ent"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
	"github.com/societydesk/receipt-verifier/internal/entity"
	"github.com/societydesk/receipt-verifier/internal/utils"
)

// RecordRequest wraps parameters for appending one audit row.
type RecordRequest struct {
	SocietyID string
	MemberID  string

	ClaimAmount      string
	ClaimBlockNumber string
	ClaimFlatNumber  string
	ClaimPurpose     string

	ExtractedAmount      *float64
	ExtractedBlockNumber string
	ExtractedFlatNumber  string
	ExtractedPaymentDate string
	ExtractedPurpose     string
	RawText              string

	Confidence float64
	MatchScore float64
	Status     string
	Reason     string
}

type VerificationRepository interface {
	Record(ctx context.Context, req *RecordRequest) (*entity.Verification, error)
	List(ctx context.Context, societyID string, fromDate, toDate *time.Time) ([]*entity.Verification, error)
}

type verificationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVerificationRepository(client *ent.Client, logger *slog.Logger) VerificationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &verificationRepository{client: client, logger: logger}
}

func (r *verificationRepository) Record(ctx context.Context, req *RecordRequest) (*entity.Verification, error) {
	create := r.client.Verification.
		Create().
		SetClaimAmount(req.ClaimAmount).
		SetClaimBlockNumber(req.ClaimBlockNumber).
		SetClaimFlatNumber(req.ClaimFlatNumber).
		SetClaimPurpose(req.ClaimPurpose).
		SetConfidence(req.Confidence).
		SetMatchScore(req.MatchScore).
		SetStatus(req.Status).
		SetReason(req.Reason)

	if req.SocietyID != "" {
		create = create.SetSocietyID(req.SocietyID)
	}
	if req.MemberID != "" {
		create = create.SetMemberID(req.MemberID)
	}
	if req.ExtractedAmount != nil {
		create = create.SetExtractedAmount(*req.ExtractedAmount)
	}
	if req.ExtractedBlockNumber != "" {
		create = create.SetExtractedBlockNumber(req.ExtractedBlockNumber)
	}
	if req.ExtractedFlatNumber != "" {
		create = create.SetExtractedFlatNumber(req.ExtractedFlatNumber)
	}
	if req.ExtractedPaymentDate != "" {
		create = create.SetExtractedPaymentDate(req.ExtractedPaymentDate)
	}
	if req.ExtractedPurpose != "" {
		create = create.SetExtractedPurpose(req.ExtractedPurpose)
	}
	if req.RawText != "" {
		create = create.SetRawText(req.RawText)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("verification record failed", "status", req.Status, "err", err)
		return nil, err
	}
	r.logger.Info("verification recorded", "id", row.ID, "status", req.Status, "reason", req.Reason)
	return utils.ToVerification(row), nil
}

func (r *verificationRepository) List(ctx context.Context, societyID string, fromDate, toDate *time.Time) ([]*entity.Verification, error) {
	q := r.client.Verification.Query()
	if societyID != "" {
		q = q.Where(verification.SocietyID(societyID))
	}
	if fromDate != nil {
		q = q.Where(verification.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(verification.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(verification.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list verifications", "society_id", societyID, "error", err)
		return nil, err
	}

	result := make([]*entity.Verification, len(rows))
	for i, row := range rows {
		result[i] = utils.ToVerification(row)
	}
	return result, nil
}
