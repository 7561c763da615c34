// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
)

// Verification is the model entity for the Verification schema.
type Verification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SocietyID holds the value of the "society_id" field.
	SocietyID *string `json:"society_id,omitempty"`
	// MemberID holds the value of the "member_id" field.
	MemberID *string `json:"member_id,omitempty"`
	// ClaimAmount holds the value of the "claim_amount" field.
	ClaimAmount string `json:"claim_amount,omitempty"`
	// ClaimBlockNumber holds the value of the "claim_block_number" field.
	ClaimBlockNumber string `json:"claim_block_number,omitempty"`
	// ClaimFlatNumber holds the value of the "claim_flat_number" field.
	ClaimFlatNumber string `json:"claim_flat_number,omitempty"`
	// ClaimPurpose holds the value of the "claim_purpose" field.
	ClaimPurpose string `json:"claim_purpose,omitempty"`
	// ExtractedAmount holds the value of the "extracted_amount" field.
	ExtractedAmount *float64 `json:"extracted_amount,omitempty"`
	// ExtractedBlockNumber holds the value of the "extracted_block_number" field.
	ExtractedBlockNumber *string `json:"extracted_block_number,omitempty"`
	// ExtractedFlatNumber holds the value of the "extracted_flat_number" field.
	ExtractedFlatNumber *string `json:"extracted_flat_number,omitempty"`
	// ExtractedPaymentDate holds the value of the "extracted_payment_date" field.
	ExtractedPaymentDate *string `json:"extracted_payment_date,omitempty"`
	// ExtractedPurpose holds the value of the "extracted_purpose" field.
	ExtractedPurpose *string `json:"extracted_purpose,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// MatchScore holds the value of the "match_score" field.
	MatchScore float64 `json:"match_score,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verification.FieldExtractedAmount, verification.FieldConfidence, verification.FieldMatchScore:
			values[i] = new(sql.NullFloat64)
		case verification.FieldSocietyID, verification.FieldMemberID, verification.FieldClaimAmount, verification.FieldClaimBlockNumber, verification.FieldClaimFlatNumber, verification.FieldClaimPurpose, verification.FieldExtractedBlockNumber, verification.FieldExtractedFlatNumber, verification.FieldExtractedPaymentDate, verification.FieldExtractedPurpose, verification.FieldRawText, verification.FieldStatus, verification.FieldReason:
			values[i] = new(sql.NullString)
		case verification.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verification.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verification fields.
func (_m *Verification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verification.FieldSocietyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field society_id", values[i])
			} else if value.Valid {
				_m.SocietyID = new(string)
				*_m.SocietyID = value.String
			}
		case verification.FieldMemberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value.Valid {
				_m.MemberID = new(string)
				*_m.MemberID = value.String
			}
		case verification.FieldClaimAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_amount", values[i])
			} else if value.Valid {
				_m.ClaimAmount = value.String
			}
		case verification.FieldClaimBlockNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_block_number", values[i])
			} else if value.Valid {
				_m.ClaimBlockNumber = value.String
			}
		case verification.FieldClaimFlatNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_flat_number", values[i])
			} else if value.Valid {
				_m.ClaimFlatNumber = value.String
			}
		case verification.FieldClaimPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_purpose", values[i])
			} else if value.Valid {
				_m.ClaimPurpose = value.String
			}
		case verification.FieldExtractedAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_amount", values[i])
			} else if value.Valid {
				_m.ExtractedAmount = new(float64)
				*_m.ExtractedAmount = value.Float64
			}
		case verification.FieldExtractedBlockNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_block_number", values[i])
			} else if value.Valid {
				_m.ExtractedBlockNumber = new(string)
				*_m.ExtractedBlockNumber = value.String
			}
		case verification.FieldExtractedFlatNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_flat_number", values[i])
			} else if value.Valid {
				_m.ExtractedFlatNumber = new(string)
				*_m.ExtractedFlatNumber = value.String
			}
		case verification.FieldExtractedPaymentDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_payment_date", values[i])
			} else if value.Valid {
				_m.ExtractedPaymentDate = new(string)
				*_m.ExtractedPaymentDate = value.String
			}
		case verification.FieldExtractedPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_purpose", values[i])
			} else if value.Valid {
				_m.ExtractedPurpose = new(string)
				*_m.ExtractedPurpose = value.String
			}
		case verification.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case verification.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case verification.FieldMatchScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_score", values[i])
			} else if value.Valid {
				_m.MatchScore = value.Float64
			}
		case verification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verification.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case verification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verification.
// This includes values selected through modifiers, order, etc.
func (_m *Verification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Verification.
// Note that you need to call Verification.Unwrap() before calling this method if this Verification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verification) Update() *VerificationUpdateOne {
	return NewVerificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verification) Unwrap() *Verification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verification) String() string {
	var builder strings.Builder
	builder.WriteString("Verification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SocietyID; v != nil {
		builder.WriteString("society_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MemberID; v != nil {
		builder.WriteString("member_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("claim_amount=")
	builder.WriteString(_m.ClaimAmount)
	builder.WriteString(", ")
	builder.WriteString("claim_block_number=")
	builder.WriteString(_m.ClaimBlockNumber)
	builder.WriteString(", ")
	builder.WriteString("claim_flat_number=")
	builder.WriteString(_m.ClaimFlatNumber)
	builder.WriteString(", ")
	builder.WriteString("claim_purpose=")
	builder.WriteString(_m.ClaimPurpose)
	builder.WriteString(", ")
	if v := _m.ExtractedAmount; v != nil {
		builder.WriteString("extracted_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedBlockNumber; v != nil {
		builder.WriteString("extracted_block_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedFlatNumber; v != nil {
		builder.WriteString("extracted_flat_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedPaymentDate; v != nil {
		builder.WriteString("extracted_payment_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedPurpose; v != nil {
		builder.WriteString("extracted_purpose=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("match_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Verifications is a parsable slice of Verification.
type Verifications []*Verification
