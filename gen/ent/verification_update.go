// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/societydesk/receipt-verifier/gen/ent/predicate"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
)

// VerificationUpdate is the builder for updating Verification entities.
type VerificationUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationMutation
}

// Where appends a list predicates to the VerificationUpdate builder.
func (_u *VerificationUpdate) Where(ps ...predicate.Verification) *VerificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSocietyID sets the "society_id" field.
func (_u *VerificationUpdate) SetSocietyID(v string) *VerificationUpdate {
	_u.mutation.SetSocietyID(v)
	return _u
}

// SetNillableSocietyID sets the "society_id" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableSocietyID(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetSocietyID(*v)
	}
	return _u
}

// ClearSocietyID clears the value of the "society_id" field.
func (_u *VerificationUpdate) ClearSocietyID() *VerificationUpdate {
	_u.mutation.ClearSocietyID()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *VerificationUpdate) SetMemberID(v string) *VerificationUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableMemberID(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *VerificationUpdate) ClearMemberID() *VerificationUpdate {
	_u.mutation.ClearMemberID()
	return _u
}

// SetClaimAmount sets the "claim_amount" field.
func (_u *VerificationUpdate) SetClaimAmount(v string) *VerificationUpdate {
	_u.mutation.SetClaimAmount(v)
	return _u
}

// SetNillableClaimAmount sets the "claim_amount" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableClaimAmount(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetClaimAmount(*v)
	}
	return _u
}

// SetClaimBlockNumber sets the "claim_block_number" field.
func (_u *VerificationUpdate) SetClaimBlockNumber(v string) *VerificationUpdate {
	_u.mutation.SetClaimBlockNumber(v)
	return _u
}

// SetNillableClaimBlockNumber sets the "claim_block_number" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableClaimBlockNumber(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetClaimBlockNumber(*v)
	}
	return _u
}

// SetClaimFlatNumber sets the "claim_flat_number" field.
func (_u *VerificationUpdate) SetClaimFlatNumber(v string) *VerificationUpdate {
	_u.mutation.SetClaimFlatNumber(v)
	return _u
}

// SetNillableClaimFlatNumber sets the "claim_flat_number" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableClaimFlatNumber(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetClaimFlatNumber(*v)
	}
	return _u
}

// SetClaimPurpose sets the "claim_purpose" field.
func (_u *VerificationUpdate) SetClaimPurpose(v string) *VerificationUpdate {
	_u.mutation.SetClaimPurpose(v)
	return _u
}

// SetNillableClaimPurpose sets the "claim_purpose" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableClaimPurpose(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetClaimPurpose(*v)
	}
	return _u
}

// SetExtractedAmount sets the "extracted_amount" field.
func (_u *VerificationUpdate) SetExtractedAmount(v float64) *VerificationUpdate {
	_u.mutation.ResetExtractedAmount()
	_u.mutation.SetExtractedAmount(v)
	return _u
}

// SetNillableExtractedAmount sets the "extracted_amount" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableExtractedAmount(v *float64) *VerificationUpdate {
	if v != nil {
		_u.SetExtractedAmount(*v)
	}
	return _u
}

// AddExtractedAmount adds value to the "extracted_amount" field.
func (_u *VerificationUpdate) AddExtractedAmount(v float64) *VerificationUpdate {
	_u.mutation.AddExtractedAmount(v)
	return _u
}

// ClearExtractedAmount clears the value of the "extracted_amount" field.
func (_u *VerificationUpdate) ClearExtractedAmount() *VerificationUpdate {
	_u.mutation.ClearExtractedAmount()
	return _u
}

// SetExtractedBlockNumber sets the "extracted_block_number" field.
func (_u *VerificationUpdate) SetExtractedBlockNumber(v string) *VerificationUpdate {
	_u.mutation.SetExtractedBlockNumber(v)
	return _u
}

// SetNillableExtractedBlockNumber sets the "extracted_block_number" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableExtractedBlockNumber(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetExtractedBlockNumber(*v)
	}
	return _u
}

// ClearExtractedBlockNumber clears the value of the "extracted_block_number" field.
func (_u *VerificationUpdate) ClearExtractedBlockNumber() *VerificationUpdate {
	_u.mutation.ClearExtractedBlockNumber()
	return _u
}

// SetExtractedFlatNumber sets the "extracted_flat_number" field.
func (_u *VerificationUpdate) SetExtractedFlatNumber(v string) *VerificationUpdate {
	_u.mutation.SetExtractedFlatNumber(v)
	return _u
}

// SetNillableExtractedFlatNumber sets the "extracted_flat_number" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableExtractedFlatNumber(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetExtractedFlatNumber(*v)
	}
	return _u
}

// ClearExtractedFlatNumber clears the value of the "extracted_flat_number" field.
func (_u *VerificationUpdate) ClearExtractedFlatNumber() *VerificationUpdate {
	_u.mutation.ClearExtractedFlatNumber()
	return _u
}

// SetExtractedPaymentDate sets the "extracted_payment_date" field.
func (_u *VerificationUpdate) SetExtractedPaymentDate(v string) *VerificationUpdate {
	_u.mutation.SetExtractedPaymentDate(v)
	return _u
}

// SetNillableExtractedPaymentDate sets the "extracted_payment_date" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableExtractedPaymentDate(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetExtractedPaymentDate(*v)
	}
	return _u
}

// ClearExtractedPaymentDate clears the value of the "extracted_payment_date" field.
func (_u *VerificationUpdate) ClearExtractedPaymentDate() *VerificationUpdate {
	_u.mutation.ClearExtractedPaymentDate()
	return _u
}

// SetExtractedPurpose sets the "extracted_purpose" field.
func (_u *VerificationUpdate) SetExtractedPurpose(v string) *VerificationUpdate {
	_u.mutation.SetExtractedPurpose(v)
	return _u
}

// SetNillableExtractedPurpose sets the "extracted_purpose" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableExtractedPurpose(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetExtractedPurpose(*v)
	}
	return _u
}

// ClearExtractedPurpose clears the value of the "extracted_purpose" field.
func (_u *VerificationUpdate) ClearExtractedPurpose() *VerificationUpdate {
	_u.mutation.ClearExtractedPurpose()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *VerificationUpdate) SetRawText(v string) *VerificationUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableRawText(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *VerificationUpdate) ClearRawText() *VerificationUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerificationUpdate) SetConfidence(v float64) *VerificationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableConfidence(v *float64) *VerificationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerificationUpdate) AddConfidence(v float64) *VerificationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *VerificationUpdate) SetMatchScore(v float64) *VerificationUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableMatchScore(v *float64) *VerificationUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *VerificationUpdate) AddMatchScore(v float64) *VerificationUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationUpdate) SetStatus(v string) *VerificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableStatus(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *VerificationUpdate) SetReason(v string) *VerificationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableReason(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the VerificationMutation object of the builder.
func (_u *VerificationUpdate) Mutation() *VerificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationUpdate) check() error {
	if v, ok := _u.mutation.ClaimAmount(); ok {
		if err := verification.ClaimAmountValidator(v); err != nil {
			return &ValidationError{Name: "claim_amount", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimBlockNumber(); ok {
		if err := verification.ClaimBlockNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_block_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_block_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimFlatNumber(); ok {
		if err := verification.ClaimFlatNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_flat_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_flat_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimPurpose(); ok {
		if err := verification.ClaimPurposeValidator(v); err != nil {
			return &ValidationError{Name: "claim_purpose", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Verification.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := verification.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Verification.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verification.Table, verification.Columns, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SocietyID(); ok {
		_spec.SetField(verification.FieldSocietyID, field.TypeString, value)
	}
	if _u.mutation.SocietyIDCleared() {
		_spec.ClearField(verification.FieldSocietyID, field.TypeString)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(verification.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(verification.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimAmount(); ok {
		_spec.SetField(verification.FieldClaimAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimBlockNumber(); ok {
		_spec.SetField(verification.FieldClaimBlockNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimFlatNumber(); ok {
		_spec.SetField(verification.FieldClaimFlatNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimPurpose(); ok {
		_spec.SetField(verification.FieldClaimPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAmount(); ok {
		_spec.SetField(verification.FieldExtractedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedAmount(); ok {
		_spec.AddField(verification.FieldExtractedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedAmountCleared() {
		_spec.ClearField(verification.FieldExtractedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedBlockNumber(); ok {
		_spec.SetField(verification.FieldExtractedBlockNumber, field.TypeString, value)
	}
	if _u.mutation.ExtractedBlockNumberCleared() {
		_spec.ClearField(verification.FieldExtractedBlockNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFlatNumber(); ok {
		_spec.SetField(verification.FieldExtractedFlatNumber, field.TypeString, value)
	}
	if _u.mutation.ExtractedFlatNumberCleared() {
		_spec.ClearField(verification.FieldExtractedFlatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedPaymentDate(); ok {
		_spec.SetField(verification.FieldExtractedPaymentDate, field.TypeString, value)
	}
	if _u.mutation.ExtractedPaymentDateCleared() {
		_spec.ClearField(verification.FieldExtractedPaymentDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedPurpose(); ok {
		_spec.SetField(verification.FieldExtractedPurpose, field.TypeString, value)
	}
	if _u.mutation.ExtractedPurposeCleared() {
		_spec.ClearField(verification.FieldExtractedPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(verification.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(verification.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(verification.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(verification.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verification.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(verification.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationUpdateOne is the builder for updating a single Verification entity.
type VerificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationMutation
}

// SetSocietyID sets the "society_id" field.
func (_u *VerificationUpdateOne) SetSocietyID(v string) *VerificationUpdateOne {
	_u.mutation.SetSocietyID(v)
	return _u
}

// SetNillableSocietyID sets the "society_id" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableSocietyID(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetSocietyID(*v)
	}
	return _u
}

// ClearSocietyID clears the value of the "society_id" field.
func (_u *VerificationUpdateOne) ClearSocietyID() *VerificationUpdateOne {
	_u.mutation.ClearSocietyID()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *VerificationUpdateOne) SetMemberID(v string) *VerificationUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableMemberID(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *VerificationUpdateOne) ClearMemberID() *VerificationUpdateOne {
	_u.mutation.ClearMemberID()
	return _u
}

// SetClaimAmount sets the "claim_amount" field.
func (_u *VerificationUpdateOne) SetClaimAmount(v string) *VerificationUpdateOne {
	_u.mutation.SetClaimAmount(v)
	return _u
}

// SetNillableClaimAmount sets the "claim_amount" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableClaimAmount(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetClaimAmount(*v)
	}
	return _u
}

// SetClaimBlockNumber sets the "claim_block_number" field.
func (_u *VerificationUpdateOne) SetClaimBlockNumber(v string) *VerificationUpdateOne {
	_u.mutation.SetClaimBlockNumber(v)
	return _u
}

// SetNillableClaimBlockNumber sets the "claim_block_number" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableClaimBlockNumber(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetClaimBlockNumber(*v)
	}
	return _u
}

// SetClaimFlatNumber sets the "claim_flat_number" field.
func (_u *VerificationUpdateOne) SetClaimFlatNumber(v string) *VerificationUpdateOne {
	_u.mutation.SetClaimFlatNumber(v)
	return _u
}

// SetNillableClaimFlatNumber sets the "claim_flat_number" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableClaimFlatNumber(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetClaimFlatNumber(*v)
	}
	return _u
}

// SetClaimPurpose sets the "claim_purpose" field.
func (_u *VerificationUpdateOne) SetClaimPurpose(v string) *VerificationUpdateOne {
	_u.mutation.SetClaimPurpose(v)
	return _u
}

// SetNillableClaimPurpose sets the "claim_purpose" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableClaimPurpose(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetClaimPurpose(*v)
	}
	return _u
}

// SetExtractedAmount sets the "extracted_amount" field.
func (_u *VerificationUpdateOne) SetExtractedAmount(v float64) *VerificationUpdateOne {
	_u.mutation.ResetExtractedAmount()
	_u.mutation.SetExtractedAmount(v)
	return _u
}

// SetNillableExtractedAmount sets the "extracted_amount" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableExtractedAmount(v *float64) *VerificationUpdateOne {
	if v != nil {
		_u.SetExtractedAmount(*v)
	}
	return _u
}

// AddExtractedAmount adds value to the "extracted_amount" field.
func (_u *VerificationUpdateOne) AddExtractedAmount(v float64) *VerificationUpdateOne {
	_u.mutation.AddExtractedAmount(v)
	return _u
}

// ClearExtractedAmount clears the value of the "extracted_amount" field.
func (_u *VerificationUpdateOne) ClearExtractedAmount() *VerificationUpdateOne {
	_u.mutation.ClearExtractedAmount()
	return _u
}

// SetExtractedBlockNumber sets the "extracted_block_number" field.
func (_u *VerificationUpdateOne) SetExtractedBlockNumber(v string) *VerificationUpdateOne {
	_u.mutation.SetExtractedBlockNumber(v)
	return _u
}

// SetNillableExtractedBlockNumber sets the "extracted_block_number" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableExtractedBlockNumber(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetExtractedBlockNumber(*v)
	}
	return _u
}

// ClearExtractedBlockNumber clears the value of the "extracted_block_number" field.
func (_u *VerificationUpdateOne) ClearExtractedBlockNumber() *VerificationUpdateOne {
	_u.mutation.ClearExtractedBlockNumber()
	return _u
}

// SetExtractedFlatNumber sets the "extracted_flat_number" field.
func (_u *VerificationUpdateOne) SetExtractedFlatNumber(v string) *VerificationUpdateOne {
	_u.mutation.SetExtractedFlatNumber(v)
	return _u
}

// SetNillableExtractedFlatNumber sets the "extracted_flat_number" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableExtractedFlatNumber(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetExtractedFlatNumber(*v)
	}
	return _u
}

// ClearExtractedFlatNumber clears the value of the "extracted_flat_number" field.
func (_u *VerificationUpdateOne) ClearExtractedFlatNumber() *VerificationUpdateOne {
	_u.mutation.ClearExtractedFlatNumber()
	return _u
}

// SetExtractedPaymentDate sets the "extracted_payment_date" field.
func (_u *VerificationUpdateOne) SetExtractedPaymentDate(v string) *VerificationUpdateOne {
	_u.mutation.SetExtractedPaymentDate(v)
	return _u
}

// SetNillableExtractedPaymentDate sets the "extracted_payment_date" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableExtractedPaymentDate(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetExtractedPaymentDate(*v)
	}
	return _u
}

// ClearExtractedPaymentDate clears the value of the "extracted_payment_date" field.
func (_u *VerificationUpdateOne) ClearExtractedPaymentDate() *VerificationUpdateOne {
	_u.mutation.ClearExtractedPaymentDate()
	return _u
}

// SetExtractedPurpose sets the "extracted_purpose" field.
func (_u *VerificationUpdateOne) SetExtractedPurpose(v string) *VerificationUpdateOne {
	_u.mutation.SetExtractedPurpose(v)
	return _u
}

// SetNillableExtractedPurpose sets the "extracted_purpose" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableExtractedPurpose(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetExtractedPurpose(*v)
	}
	return _u
}

// ClearExtractedPurpose clears the value of the "extracted_purpose" field.
func (_u *VerificationUpdateOne) ClearExtractedPurpose() *VerificationUpdateOne {
	_u.mutation.ClearExtractedPurpose()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *VerificationUpdateOne) SetRawText(v string) *VerificationUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableRawText(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *VerificationUpdateOne) ClearRawText() *VerificationUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerificationUpdateOne) SetConfidence(v float64) *VerificationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableConfidence(v *float64) *VerificationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerificationUpdateOne) AddConfidence(v float64) *VerificationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *VerificationUpdateOne) SetMatchScore(v float64) *VerificationUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableMatchScore(v *float64) *VerificationUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *VerificationUpdateOne) AddMatchScore(v float64) *VerificationUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationUpdateOne) SetStatus(v string) *VerificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableStatus(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *VerificationUpdateOne) SetReason(v string) *VerificationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableReason(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the VerificationMutation object of the builder.
func (_u *VerificationUpdateOne) Mutation() *VerificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationUpdate builder.
func (_u *VerificationUpdateOne) Where(ps ...predicate.Verification) *VerificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationUpdateOne) Select(field string, fields ...string) *VerificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verification entity.
func (_u *VerificationUpdateOne) Save(ctx context.Context) (*Verification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationUpdateOne) SaveX(ctx context.Context) *Verification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationUpdateOne) check() error {
	if v, ok := _u.mutation.ClaimAmount(); ok {
		if err := verification.ClaimAmountValidator(v); err != nil {
			return &ValidationError{Name: "claim_amount", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimBlockNumber(); ok {
		if err := verification.ClaimBlockNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_block_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_block_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimFlatNumber(); ok {
		if err := verification.ClaimFlatNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_flat_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_flat_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimPurpose(); ok {
		if err := verification.ClaimPurposeValidator(v); err != nil {
			return &ValidationError{Name: "claim_purpose", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Verification.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := verification.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Verification.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationUpdateOne) sqlSave(ctx context.Context) (_node *Verification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verification.Table, verification.Columns, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verification.FieldID)
		for _, f := range fields {
			if !verification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SocietyID(); ok {
		_spec.SetField(verification.FieldSocietyID, field.TypeString, value)
	}
	if _u.mutation.SocietyIDCleared() {
		_spec.ClearField(verification.FieldSocietyID, field.TypeString)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(verification.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(verification.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimAmount(); ok {
		_spec.SetField(verification.FieldClaimAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimBlockNumber(); ok {
		_spec.SetField(verification.FieldClaimBlockNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimFlatNumber(); ok {
		_spec.SetField(verification.FieldClaimFlatNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimPurpose(); ok {
		_spec.SetField(verification.FieldClaimPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAmount(); ok {
		_spec.SetField(verification.FieldExtractedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedAmount(); ok {
		_spec.AddField(verification.FieldExtractedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedAmountCleared() {
		_spec.ClearField(verification.FieldExtractedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedBlockNumber(); ok {
		_spec.SetField(verification.FieldExtractedBlockNumber, field.TypeString, value)
	}
	if _u.mutation.ExtractedBlockNumberCleared() {
		_spec.ClearField(verification.FieldExtractedBlockNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFlatNumber(); ok {
		_spec.SetField(verification.FieldExtractedFlatNumber, field.TypeString, value)
	}
	if _u.mutation.ExtractedFlatNumberCleared() {
		_spec.ClearField(verification.FieldExtractedFlatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedPaymentDate(); ok {
		_spec.SetField(verification.FieldExtractedPaymentDate, field.TypeString, value)
	}
	if _u.mutation.ExtractedPaymentDateCleared() {
		_spec.ClearField(verification.FieldExtractedPaymentDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedPurpose(); ok {
		_spec.SetField(verification.FieldExtractedPurpose, field.TypeString, value)
	}
	if _u.mutation.ExtractedPurposeCleared() {
		_spec.ClearField(verification.FieldExtractedPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(verification.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(verification.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(verification.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(verification.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verification.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(verification.FieldReason, field.TypeString, value)
	}
	_node = &Verification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
