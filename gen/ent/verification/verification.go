// Code generated by ent, DO NOT EDIT.

package verification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verification type in the database.
	Label = "verification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSocietyID holds the string denoting the society_id field in the database.
	FieldSocietyID = "society_id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldClaimAmount holds the string denoting the claim_amount field in the database.
	FieldClaimAmount = "claim_amount"
	// FieldClaimBlockNumber holds the string denoting the claim_block_number field in the database.
	FieldClaimBlockNumber = "claim_block_number"
	// FieldClaimFlatNumber holds the string denoting the claim_flat_number field in the database.
	FieldClaimFlatNumber = "claim_flat_number"
	// FieldClaimPurpose holds the string denoting the claim_purpose field in the database.
	FieldClaimPurpose = "claim_purpose"
	// FieldExtractedAmount holds the string denoting the extracted_amount field in the database.
	FieldExtractedAmount = "extracted_amount"
	// FieldExtractedBlockNumber holds the string denoting the extracted_block_number field in the database.
	FieldExtractedBlockNumber = "extracted_block_number"
	// FieldExtractedFlatNumber holds the string denoting the extracted_flat_number field in the database.
	FieldExtractedFlatNumber = "extracted_flat_number"
	// FieldExtractedPaymentDate holds the string denoting the extracted_payment_date field in the database.
	FieldExtractedPaymentDate = "extracted_payment_date"
	// FieldExtractedPurpose holds the string denoting the extracted_purpose field in the database.
	FieldExtractedPurpose = "extracted_purpose"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldMatchScore holds the string denoting the match_score field in the database.
	FieldMatchScore = "match_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the verification in the database.
	Table = "verification_audit"
)

// Columns holds all SQL columns for verification fields.
var Columns = []string{
	FieldID,
	FieldSocietyID,
	FieldMemberID,
	FieldClaimAmount,
	FieldClaimBlockNumber,
	FieldClaimFlatNumber,
	FieldClaimPurpose,
	FieldExtractedAmount,
	FieldExtractedBlockNumber,
	FieldExtractedFlatNumber,
	FieldExtractedPaymentDate,
	FieldExtractedPurpose,
	FieldRawText,
	FieldConfidence,
	FieldMatchScore,
	FieldStatus,
	FieldReason,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ClaimAmountValidator is a validator for the "claim_amount" field. It is called by the builders before save.
	ClaimAmountValidator func(string) error
	// ClaimBlockNumberValidator is a validator for the "claim_block_number" field. It is called by the builders before save.
	ClaimBlockNumberValidator func(string) error
	// ClaimFlatNumberValidator is a validator for the "claim_flat_number" field. It is called by the builders before save.
	ClaimFlatNumberValidator func(string) error
	// ClaimPurposeValidator is a validator for the "claim_purpose" field. It is called by the builders before save.
	ClaimPurposeValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Verification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySocietyID orders the results by the society_id field.
func BySocietyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSocietyID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByClaimAmount orders the results by the claim_amount field.
func ByClaimAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimAmount, opts...).ToFunc()
}

// ByClaimBlockNumber orders the results by the claim_block_number field.
func ByClaimBlockNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimBlockNumber, opts...).ToFunc()
}

// ByClaimFlatNumber orders the results by the claim_flat_number field.
func ByClaimFlatNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimFlatNumber, opts...).ToFunc()
}

// ByClaimPurpose orders the results by the claim_purpose field.
func ByClaimPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimPurpose, opts...).ToFunc()
}

// ByExtractedAmount orders the results by the extracted_amount field.
func ByExtractedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAmount, opts...).ToFunc()
}

// ByExtractedBlockNumber orders the results by the extracted_block_number field.
func ByExtractedBlockNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedBlockNumber, opts...).ToFunc()
}

// ByExtractedFlatNumber orders the results by the extracted_flat_number field.
func ByExtractedFlatNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedFlatNumber, opts...).ToFunc()
}

// ByExtractedPaymentDate orders the results by the extracted_payment_date field.
func ByExtractedPaymentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedPaymentDate, opts...).ToFunc()
}

// ByExtractedPurpose orders the results by the extracted_purpose field.
func ByExtractedPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedPurpose, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByMatchScore orders the results by the match_score field.
func ByMatchScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
