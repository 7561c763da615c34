package entity

import (
	"time"

	"github.com/google/uuid"
)

// Verification represents one audit row for data transfer between layers.
type Verification struct {
	ID        uuid.UUID `json:"id"`
	SocietyID string    `json:"society_id,omitempty"`
	MemberID  string    `json:"member_id,omitempty"`

	ClaimAmount      string `json:"claim_amount"`
	ClaimBlockNumber string `json:"claim_block_number"`
	ClaimFlatNumber  string `json:"claim_flat_number"`
	ClaimPurpose     string `json:"claim_purpose"`

	ExtractedAmount      *float64 `json:"extracted_amount,omitempty"`
	ExtractedBlockNumber string   `json:"extracted_block_number,omitempty"`
	ExtractedFlatNumber  string   `json:"extracted_flat_number,omitempty"`
	ExtractedPaymentDate string   `json:"extracted_payment_date,omitempty"`
	ExtractedPurpose     string   `json:"extracted_purpose,omitempty"`
	RawText              string   `json:"raw_text,omitempty"`

	Confidence float64 `json:"confidence"`
	MatchScore float64 `json:"match_score"`
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
