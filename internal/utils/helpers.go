package utils

import (
	"fmt"
	"time"

	"github.com/societydesk/receipt-verifier/gen/ent"
	verifypb "github.com/societydesk/receipt-verifier/gen/proto/verify/v1"
	"github.com/societydesk/receipt-verifier/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToVerification(v *ent.Verification) *entity.Verification {
	return &entity.Verification{
		ID:                   v.ID,
		SocietyID:            strOrEmpty(v.SocietyID),
		MemberID:             strOrEmpty(v.MemberID),
		ClaimAmount:          v.ClaimAmount,
		ClaimBlockNumber:     v.ClaimBlockNumber,
		ClaimFlatNumber:      v.ClaimFlatNumber,
		ClaimPurpose:         v.ClaimPurpose,
		ExtractedAmount:      v.ExtractedAmount,
		ExtractedBlockNumber: strOrEmpty(v.ExtractedBlockNumber),
		ExtractedFlatNumber:  strOrEmpty(v.ExtractedFlatNumber),
		ExtractedPaymentDate: strOrEmpty(v.ExtractedPaymentDate),
		ExtractedPurpose:     strOrEmpty(v.ExtractedPurpose),
		RawText:              strOrEmpty(v.RawText),
		Confidence:           v.Confidence,
		MatchScore:           v.MatchScore,
		Status:               v.Status,
		Reason:               v.Reason,
		CreatedAt:            v.CreatedAt,
	}
}

func ToPBVerification(v *entity.Verification) *verifypb.Verification {
	pb := &verifypb.Verification{
		Id:               v.ID.String(),
		SocietyId:        v.SocietyID,
		MemberId:         v.MemberID,
		ClaimAmount:      v.ClaimAmount,
		ClaimBlockNumber: v.ClaimBlockNumber,
		ClaimFlatNumber:  v.ClaimFlatNumber,
		ClaimPurpose:     v.ClaimPurpose,
		Confidence:       v.Confidence,
		MatchScore:       v.MatchScore,
		Status:           v.Status,
		Reason:           v.Reason,
		CreatedAt:        v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.ExtractedAmount != nil {
		pb.ExtractedAmount = fmt.Sprintf("%.2f", *v.ExtractedAmount)
	}
	pb.ExtractedBlockNumber = v.ExtractedBlockNumber
	pb.ExtractedFlatNumber = v.ExtractedFlatNumber
	pb.ExtractedPaymentDate = v.ExtractedPaymentDate
	pb.ExtractedPurpose = v.ExtractedPurpose
	return pb
}
