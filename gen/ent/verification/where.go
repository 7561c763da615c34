// Code generated by ent, DO NOT EDIT.

package verification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/societydesk/receipt-verifier/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldID, id))
}

// SocietyID applies equality check predicate on the "society_id" field. It's identical to SocietyIDEQ.
func SocietyID(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldSocietyID, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldMemberID, v))
}

// ClaimAmount applies equality check predicate on the "claim_amount" field. It's identical to ClaimAmountEQ.
func ClaimAmount(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimAmount, v))
}

// ClaimBlockNumber applies equality check predicate on the "claim_block_number" field. It's identical to ClaimBlockNumberEQ.
func ClaimBlockNumber(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimBlockNumber, v))
}

// ClaimFlatNumber applies equality check predicate on the "claim_flat_number" field. It's identical to ClaimFlatNumberEQ.
func ClaimFlatNumber(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimFlatNumber, v))
}

// ClaimPurpose applies equality check predicate on the "claim_purpose" field. It's identical to ClaimPurposeEQ.
func ClaimPurpose(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimPurpose, v))
}

// ExtractedAmount applies equality check predicate on the "extracted_amount" field. It's identical to ExtractedAmountEQ.
func ExtractedAmount(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedAmount, v))
}

// ExtractedBlockNumber applies equality check predicate on the "extracted_block_number" field. It's identical to ExtractedBlockNumberEQ.
func ExtractedBlockNumber(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedBlockNumber, v))
}

// ExtractedFlatNumber applies equality check predicate on the "extracted_flat_number" field. It's identical to ExtractedFlatNumberEQ.
func ExtractedFlatNumber(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedFlatNumber, v))
}

// ExtractedPaymentDate applies equality check predicate on the "extracted_payment_date" field. It's identical to ExtractedPaymentDateEQ.
func ExtractedPaymentDate(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedPaymentDate, v))
}

// ExtractedPurpose applies equality check predicate on the "extracted_purpose" field. It's identical to ExtractedPurposeEQ.
func ExtractedPurpose(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedPurpose, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldRawText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldConfidence, v))
}

// MatchScore applies equality check predicate on the "match_score" field. It's identical to MatchScoreEQ.
func MatchScore(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldMatchScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldStatus, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldCreatedAt, v))
}

// SocietyIDEQ applies the EQ predicate on the "society_id" field.
func SocietyIDEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldSocietyID, v))
}

// SocietyIDNEQ applies the NEQ predicate on the "society_id" field.
func SocietyIDNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldSocietyID, v))
}

// SocietyIDIn applies the In predicate on the "society_id" field.
func SocietyIDIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldSocietyID, vs...))
}

// SocietyIDNotIn applies the NotIn predicate on the "society_id" field.
func SocietyIDNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldSocietyID, vs...))
}

// SocietyIDGT applies the GT predicate on the "society_id" field.
func SocietyIDGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldSocietyID, v))
}

// SocietyIDGTE applies the GTE predicate on the "society_id" field.
func SocietyIDGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldSocietyID, v))
}

// SocietyIDLT applies the LT predicate on the "society_id" field.
func SocietyIDLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldSocietyID, v))
}

// SocietyIDLTE applies the LTE predicate on the "society_id" field.
func SocietyIDLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldSocietyID, v))
}

// SocietyIDContains applies the Contains predicate on the "society_id" field.
func SocietyIDContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldSocietyID, v))
}

// SocietyIDHasPrefix applies the HasPrefix predicate on the "society_id" field.
func SocietyIDHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldSocietyID, v))
}

// SocietyIDHasSuffix applies the HasSuffix predicate on the "society_id" field.
func SocietyIDHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldSocietyID, v))
}

// SocietyIDIsNil applies the IsNil predicate on the "society_id" field.
func SocietyIDIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldSocietyID))
}

// SocietyIDNotNil applies the NotNil predicate on the "society_id" field.
func SocietyIDNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldSocietyID))
}

// SocietyIDEqualFold applies the EqualFold predicate on the "society_id" field.
func SocietyIDEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldSocietyID, v))
}

// SocietyIDContainsFold applies the ContainsFold predicate on the "society_id" field.
func SocietyIDContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldSocietyID, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldMemberID, v))
}

// MemberIDContains applies the Contains predicate on the "member_id" field.
func MemberIDContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldMemberID, v))
}

// MemberIDHasPrefix applies the HasPrefix predicate on the "member_id" field.
func MemberIDHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldMemberID, v))
}

// MemberIDHasSuffix applies the HasSuffix predicate on the "member_id" field.
func MemberIDHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldMemberID, v))
}

// MemberIDIsNil applies the IsNil predicate on the "member_id" field.
func MemberIDIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldMemberID))
}

// MemberIDNotNil applies the NotNil predicate on the "member_id" field.
func MemberIDNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldMemberID))
}

// MemberIDEqualFold applies the EqualFold predicate on the "member_id" field.
func MemberIDEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldMemberID, v))
}

// MemberIDContainsFold applies the ContainsFold predicate on the "member_id" field.
func MemberIDContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldMemberID, v))
}

// ClaimAmountEQ applies the EQ predicate on the "claim_amount" field.
func ClaimAmountEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimAmount, v))
}

// ClaimAmountNEQ applies the NEQ predicate on the "claim_amount" field.
func ClaimAmountNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldClaimAmount, v))
}

// ClaimAmountIn applies the In predicate on the "claim_amount" field.
func ClaimAmountIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldClaimAmount, vs...))
}

// ClaimAmountNotIn applies the NotIn predicate on the "claim_amount" field.
func ClaimAmountNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldClaimAmount, vs...))
}

// ClaimAmountGT applies the GT predicate on the "claim_amount" field.
func ClaimAmountGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldClaimAmount, v))
}

// ClaimAmountGTE applies the GTE predicate on the "claim_amount" field.
func ClaimAmountGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldClaimAmount, v))
}

// ClaimAmountLT applies the LT predicate on the "claim_amount" field.
func ClaimAmountLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldClaimAmount, v))
}

// ClaimAmountLTE applies the LTE predicate on the "claim_amount" field.
func ClaimAmountLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldClaimAmount, v))
}

// ClaimAmountContains applies the Contains predicate on the "claim_amount" field.
func ClaimAmountContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldClaimAmount, v))
}

// ClaimAmountHasPrefix applies the HasPrefix predicate on the "claim_amount" field.
func ClaimAmountHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldClaimAmount, v))
}

// ClaimAmountHasSuffix applies the HasSuffix predicate on the "claim_amount" field.
func ClaimAmountHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldClaimAmount, v))
}

// ClaimAmountEqualFold applies the EqualFold predicate on the "claim_amount" field.
func ClaimAmountEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldClaimAmount, v))
}

// ClaimAmountContainsFold applies the ContainsFold predicate on the "claim_amount" field.
func ClaimAmountContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldClaimAmount, v))
}

// ClaimBlockNumberEQ applies the EQ predicate on the "claim_block_number" field.
func ClaimBlockNumberEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberNEQ applies the NEQ predicate on the "claim_block_number" field.
func ClaimBlockNumberNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberIn applies the In predicate on the "claim_block_number" field.
func ClaimBlockNumberIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldClaimBlockNumber, vs...))
}

// ClaimBlockNumberNotIn applies the NotIn predicate on the "claim_block_number" field.
func ClaimBlockNumberNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldClaimBlockNumber, vs...))
}

// ClaimBlockNumberGT applies the GT predicate on the "claim_block_number" field.
func ClaimBlockNumberGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberGTE applies the GTE predicate on the "claim_block_number" field.
func ClaimBlockNumberGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberLT applies the LT predicate on the "claim_block_number" field.
func ClaimBlockNumberLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberLTE applies the LTE predicate on the "claim_block_number" field.
func ClaimBlockNumberLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberContains applies the Contains predicate on the "claim_block_number" field.
func ClaimBlockNumberContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberHasPrefix applies the HasPrefix predicate on the "claim_block_number" field.
func ClaimBlockNumberHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberHasSuffix applies the HasSuffix predicate on the "claim_block_number" field.
func ClaimBlockNumberHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberEqualFold applies the EqualFold predicate on the "claim_block_number" field.
func ClaimBlockNumberEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldClaimBlockNumber, v))
}

// ClaimBlockNumberContainsFold applies the ContainsFold predicate on the "claim_block_number" field.
func ClaimBlockNumberContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldClaimBlockNumber, v))
}

// ClaimFlatNumberEQ applies the EQ predicate on the "claim_flat_number" field.
func ClaimFlatNumberEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberNEQ applies the NEQ predicate on the "claim_flat_number" field.
func ClaimFlatNumberNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberIn applies the In predicate on the "claim_flat_number" field.
func ClaimFlatNumberIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldClaimFlatNumber, vs...))
}

// ClaimFlatNumberNotIn applies the NotIn predicate on the "claim_flat_number" field.
func ClaimFlatNumberNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldClaimFlatNumber, vs...))
}

// ClaimFlatNumberGT applies the GT predicate on the "claim_flat_number" field.
func ClaimFlatNumberGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberGTE applies the GTE predicate on the "claim_flat_number" field.
func ClaimFlatNumberGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberLT applies the LT predicate on the "claim_flat_number" field.
func ClaimFlatNumberLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberLTE applies the LTE predicate on the "claim_flat_number" field.
func ClaimFlatNumberLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberContains applies the Contains predicate on the "claim_flat_number" field.
func ClaimFlatNumberContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberHasPrefix applies the HasPrefix predicate on the "claim_flat_number" field.
func ClaimFlatNumberHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberHasSuffix applies the HasSuffix predicate on the "claim_flat_number" field.
func ClaimFlatNumberHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberEqualFold applies the EqualFold predicate on the "claim_flat_number" field.
func ClaimFlatNumberEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldClaimFlatNumber, v))
}

// ClaimFlatNumberContainsFold applies the ContainsFold predicate on the "claim_flat_number" field.
func ClaimFlatNumberContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldClaimFlatNumber, v))
}

// ClaimPurposeEQ applies the EQ predicate on the "claim_purpose" field.
func ClaimPurposeEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldClaimPurpose, v))
}

// ClaimPurposeNEQ applies the NEQ predicate on the "claim_purpose" field.
func ClaimPurposeNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldClaimPurpose, v))
}

// ClaimPurposeIn applies the In predicate on the "claim_purpose" field.
func ClaimPurposeIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldClaimPurpose, vs...))
}

// ClaimPurposeNotIn applies the NotIn predicate on the "claim_purpose" field.
func ClaimPurposeNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldClaimPurpose, vs...))
}

// ClaimPurposeGT applies the GT predicate on the "claim_purpose" field.
func ClaimPurposeGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldClaimPurpose, v))
}

// ClaimPurposeGTE applies the GTE predicate on the "claim_purpose" field.
func ClaimPurposeGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldClaimPurpose, v))
}

// ClaimPurposeLT applies the LT predicate on the "claim_purpose" field.
func ClaimPurposeLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldClaimPurpose, v))
}

// ClaimPurposeLTE applies the LTE predicate on the "claim_purpose" field.
func ClaimPurposeLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldClaimPurpose, v))
}

// ClaimPurposeContains applies the Contains predicate on the "claim_purpose" field.
func ClaimPurposeContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldClaimPurpose, v))
}

// ClaimPurposeHasPrefix applies the HasPrefix predicate on the "claim_purpose" field.
func ClaimPurposeHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldClaimPurpose, v))
}

// ClaimPurposeHasSuffix applies the HasSuffix predicate on the "claim_purpose" field.
func ClaimPurposeHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldClaimPurpose, v))
}

// ClaimPurposeEqualFold applies the EqualFold predicate on the "claim_purpose" field.
func ClaimPurposeEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldClaimPurpose, v))
}

// ClaimPurposeContainsFold applies the ContainsFold predicate on the "claim_purpose" field.
func ClaimPurposeContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldClaimPurpose, v))
}

// ExtractedAmountEQ applies the EQ predicate on the "extracted_amount" field.
func ExtractedAmountEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedAmount, v))
}

// ExtractedAmountNEQ applies the NEQ predicate on the "extracted_amount" field.
func ExtractedAmountNEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldExtractedAmount, v))
}

// ExtractedAmountIn applies the In predicate on the "extracted_amount" field.
func ExtractedAmountIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldExtractedAmount, vs...))
}

// ExtractedAmountNotIn applies the NotIn predicate on the "extracted_amount" field.
func ExtractedAmountNotIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldExtractedAmount, vs...))
}

// ExtractedAmountGT applies the GT predicate on the "extracted_amount" field.
func ExtractedAmountGT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldExtractedAmount, v))
}

// ExtractedAmountGTE applies the GTE predicate on the "extracted_amount" field.
func ExtractedAmountGTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldExtractedAmount, v))
}

// ExtractedAmountLT applies the LT predicate on the "extracted_amount" field.
func ExtractedAmountLT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldExtractedAmount, v))
}

// ExtractedAmountLTE applies the LTE predicate on the "extracted_amount" field.
func ExtractedAmountLTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldExtractedAmount, v))
}

// ExtractedAmountIsNil applies the IsNil predicate on the "extracted_amount" field.
func ExtractedAmountIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldExtractedAmount))
}

// ExtractedAmountNotNil applies the NotNil predicate on the "extracted_amount" field.
func ExtractedAmountNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldExtractedAmount))
}

// ExtractedBlockNumberEQ applies the EQ predicate on the "extracted_block_number" field.
func ExtractedBlockNumberEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberNEQ applies the NEQ predicate on the "extracted_block_number" field.
func ExtractedBlockNumberNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberIn applies the In predicate on the "extracted_block_number" field.
func ExtractedBlockNumberIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldExtractedBlockNumber, vs...))
}

// ExtractedBlockNumberNotIn applies the NotIn predicate on the "extracted_block_number" field.
func ExtractedBlockNumberNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldExtractedBlockNumber, vs...))
}

// ExtractedBlockNumberGT applies the GT predicate on the "extracted_block_number" field.
func ExtractedBlockNumberGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberGTE applies the GTE predicate on the "extracted_block_number" field.
func ExtractedBlockNumberGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberLT applies the LT predicate on the "extracted_block_number" field.
func ExtractedBlockNumberLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberLTE applies the LTE predicate on the "extracted_block_number" field.
func ExtractedBlockNumberLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberContains applies the Contains predicate on the "extracted_block_number" field.
func ExtractedBlockNumberContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberHasPrefix applies the HasPrefix predicate on the "extracted_block_number" field.
func ExtractedBlockNumberHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberHasSuffix applies the HasSuffix predicate on the "extracted_block_number" field.
func ExtractedBlockNumberHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberIsNil applies the IsNil predicate on the "extracted_block_number" field.
func ExtractedBlockNumberIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldExtractedBlockNumber))
}

// ExtractedBlockNumberNotNil applies the NotNil predicate on the "extracted_block_number" field.
func ExtractedBlockNumberNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldExtractedBlockNumber))
}

// ExtractedBlockNumberEqualFold applies the EqualFold predicate on the "extracted_block_number" field.
func ExtractedBlockNumberEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldExtractedBlockNumber, v))
}

// ExtractedBlockNumberContainsFold applies the ContainsFold predicate on the "extracted_block_number" field.
func ExtractedBlockNumberContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldExtractedBlockNumber, v))
}

// ExtractedFlatNumberEQ applies the EQ predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberNEQ applies the NEQ predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberIn applies the In predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldExtractedFlatNumber, vs...))
}

// ExtractedFlatNumberNotIn applies the NotIn predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldExtractedFlatNumber, vs...))
}

// ExtractedFlatNumberGT applies the GT predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberGTE applies the GTE predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberLT applies the LT predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberLTE applies the LTE predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberContains applies the Contains predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberHasPrefix applies the HasPrefix predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberHasSuffix applies the HasSuffix predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberIsNil applies the IsNil predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldExtractedFlatNumber))
}

// ExtractedFlatNumberNotNil applies the NotNil predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldExtractedFlatNumber))
}

// ExtractedFlatNumberEqualFold applies the EqualFold predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldExtractedFlatNumber, v))
}

// ExtractedFlatNumberContainsFold applies the ContainsFold predicate on the "extracted_flat_number" field.
func ExtractedFlatNumberContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldExtractedFlatNumber, v))
}

// ExtractedPaymentDateEQ applies the EQ predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateNEQ applies the NEQ predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateIn applies the In predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldExtractedPaymentDate, vs...))
}

// ExtractedPaymentDateNotIn applies the NotIn predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldExtractedPaymentDate, vs...))
}

// ExtractedPaymentDateGT applies the GT predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateGTE applies the GTE predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateLT applies the LT predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateLTE applies the LTE predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateContains applies the Contains predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateHasPrefix applies the HasPrefix predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateHasSuffix applies the HasSuffix predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateIsNil applies the IsNil predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldExtractedPaymentDate))
}

// ExtractedPaymentDateNotNil applies the NotNil predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldExtractedPaymentDate))
}

// ExtractedPaymentDateEqualFold applies the EqualFold predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldExtractedPaymentDate, v))
}

// ExtractedPaymentDateContainsFold applies the ContainsFold predicate on the "extracted_payment_date" field.
func ExtractedPaymentDateContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldExtractedPaymentDate, v))
}

// ExtractedPurposeEQ applies the EQ predicate on the "extracted_purpose" field.
func ExtractedPurposeEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldExtractedPurpose, v))
}

// ExtractedPurposeNEQ applies the NEQ predicate on the "extracted_purpose" field.
func ExtractedPurposeNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldExtractedPurpose, v))
}

// ExtractedPurposeIn applies the In predicate on the "extracted_purpose" field.
func ExtractedPurposeIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldExtractedPurpose, vs...))
}

// ExtractedPurposeNotIn applies the NotIn predicate on the "extracted_purpose" field.
func ExtractedPurposeNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldExtractedPurpose, vs...))
}

// ExtractedPurposeGT applies the GT predicate on the "extracted_purpose" field.
func ExtractedPurposeGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldExtractedPurpose, v))
}

// ExtractedPurposeGTE applies the GTE predicate on the "extracted_purpose" field.
func ExtractedPurposeGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldExtractedPurpose, v))
}

// ExtractedPurposeLT applies the LT predicate on the "extracted_purpose" field.
func ExtractedPurposeLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldExtractedPurpose, v))
}

// ExtractedPurposeLTE applies the LTE predicate on the "extracted_purpose" field.
func ExtractedPurposeLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldExtractedPurpose, v))
}

// ExtractedPurposeContains applies the Contains predicate on the "extracted_purpose" field.
func ExtractedPurposeContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldExtractedPurpose, v))
}

// ExtractedPurposeHasPrefix applies the HasPrefix predicate on the "extracted_purpose" field.
func ExtractedPurposeHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldExtractedPurpose, v))
}

// ExtractedPurposeHasSuffix applies the HasSuffix predicate on the "extracted_purpose" field.
func ExtractedPurposeHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldExtractedPurpose, v))
}

// ExtractedPurposeIsNil applies the IsNil predicate on the "extracted_purpose" field.
func ExtractedPurposeIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldExtractedPurpose))
}

// ExtractedPurposeNotNil applies the NotNil predicate on the "extracted_purpose" field.
func ExtractedPurposeNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldExtractedPurpose))
}

// ExtractedPurposeEqualFold applies the EqualFold predicate on the "extracted_purpose" field.
func ExtractedPurposeEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldExtractedPurpose, v))
}

// ExtractedPurposeContainsFold applies the ContainsFold predicate on the "extracted_purpose" field.
func ExtractedPurposeContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldExtractedPurpose, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldRawText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldConfidence, v))
}

// MatchScoreEQ applies the EQ predicate on the "match_score" field.
func MatchScoreEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldMatchScore, v))
}

// MatchScoreNEQ applies the NEQ predicate on the "match_score" field.
func MatchScoreNEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldMatchScore, v))
}

// MatchScoreIn applies the In predicate on the "match_score" field.
func MatchScoreIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldMatchScore, vs...))
}

// MatchScoreNotIn applies the NotIn predicate on the "match_score" field.
func MatchScoreNotIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldMatchScore, vs...))
}

// MatchScoreGT applies the GT predicate on the "match_score" field.
func MatchScoreGT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldMatchScore, v))
}

// MatchScoreGTE applies the GTE predicate on the "match_score" field.
func MatchScoreGTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldMatchScore, v))
}

// MatchScoreLT applies the LT predicate on the "match_score" field.
func MatchScoreLT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldMatchScore, v))
}

// MatchScoreLTE applies the LTE predicate on the "match_score" field.
func MatchScoreLTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldMatchScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldStatus, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.NotPredicates(p))
}
