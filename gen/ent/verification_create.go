// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
)

// VerificationCreate is the builder for creating a Verification entity.
type VerificationCreate struct {
	config
	mutation *VerificationMutation
	hooks    []Hook
}

// SetSocietyID sets the "society_id" field.
func (_c *VerificationCreate) SetSocietyID(v string) *VerificationCreate {
	_c.mutation.SetSocietyID(v)
	return _c
}

// SetNillableSocietyID sets the "society_id" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableSocietyID(v *string) *VerificationCreate {
	if v != nil {
		_c.SetSocietyID(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *VerificationCreate) SetMemberID(v string) *VerificationCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableMemberID(v *string) *VerificationCreate {
	if v != nil {
		_c.SetMemberID(*v)
	}
	return _c
}

// SetClaimAmount sets the "claim_amount" field.
func (_c *VerificationCreate) SetClaimAmount(v string) *VerificationCreate {
	_c.mutation.SetClaimAmount(v)
	return _c
}

// SetClaimBlockNumber sets the "claim_block_number" field.
func (_c *VerificationCreate) SetClaimBlockNumber(v string) *VerificationCreate {
	_c.mutation.SetClaimBlockNumber(v)
	return _c
}

// SetClaimFlatNumber sets the "claim_flat_number" field.
func (_c *VerificationCreate) SetClaimFlatNumber(v string) *VerificationCreate {
	_c.mutation.SetClaimFlatNumber(v)
	return _c
}

// SetClaimPurpose sets the "claim_purpose" field.
func (_c *VerificationCreate) SetClaimPurpose(v string) *VerificationCreate {
	_c.mutation.SetClaimPurpose(v)
	return _c
}

// SetExtractedAmount sets the "extracted_amount" field.
func (_c *VerificationCreate) SetExtractedAmount(v float64) *VerificationCreate {
	_c.mutation.SetExtractedAmount(v)
	return _c
}

// SetNillableExtractedAmount sets the "extracted_amount" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableExtractedAmount(v *float64) *VerificationCreate {
	if v != nil {
		_c.SetExtractedAmount(*v)
	}
	return _c
}

// SetExtractedBlockNumber sets the "extracted_block_number" field.
func (_c *VerificationCreate) SetExtractedBlockNumber(v string) *VerificationCreate {
	_c.mutation.SetExtractedBlockNumber(v)
	return _c
}

// SetNillableExtractedBlockNumber sets the "extracted_block_number" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableExtractedBlockNumber(v *string) *VerificationCreate {
	if v != nil {
		_c.SetExtractedBlockNumber(*v)
	}
	return _c
}

// SetExtractedFlatNumber sets the "extracted_flat_number" field.
func (_c *VerificationCreate) SetExtractedFlatNumber(v string) *VerificationCreate {
	_c.mutation.SetExtractedFlatNumber(v)
	return _c
}

// SetNillableExtractedFlatNumber sets the "extracted_flat_number" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableExtractedFlatNumber(v *string) *VerificationCreate {
	if v != nil {
		_c.SetExtractedFlatNumber(*v)
	}
	return _c
}

// SetExtractedPaymentDate sets the "extracted_payment_date" field.
func (_c *VerificationCreate) SetExtractedPaymentDate(v string) *VerificationCreate {
	_c.mutation.SetExtractedPaymentDate(v)
	return _c
}

// SetNillableExtractedPaymentDate sets the "extracted_payment_date" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableExtractedPaymentDate(v *string) *VerificationCreate {
	if v != nil {
		_c.SetExtractedPaymentDate(*v)
	}
	return _c
}

// SetExtractedPurpose sets the "extracted_purpose" field.
func (_c *VerificationCreate) SetExtractedPurpose(v string) *VerificationCreate {
	_c.mutation.SetExtractedPurpose(v)
	return _c
}

// SetNillableExtractedPurpose sets the "extracted_purpose" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableExtractedPurpose(v *string) *VerificationCreate {
	if v != nil {
		_c.SetExtractedPurpose(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *VerificationCreate) SetRawText(v string) *VerificationCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableRawText(v *string) *VerificationCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VerificationCreate) SetConfidence(v float64) *VerificationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *VerificationCreate) SetMatchScore(v float64) *VerificationCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationCreate) SetStatus(v string) *VerificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *VerificationCreate) SetReason(v string) *VerificationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationCreate) SetCreatedAt(v time.Time) *VerificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableCreatedAt(v *time.Time) *VerificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationCreate) SetID(v uuid.UUID) *VerificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableID(v *uuid.UUID) *VerificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VerificationMutation object of the builder.
func (_c *VerificationCreate) Mutation() *VerificationMutation {
	return _c.mutation
}

// Save creates the Verification in the database.
func (_c *VerificationCreate) Save(ctx context.Context) (*Verification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationCreate) SaveX(ctx context.Context) *Verification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationCreate) check() error {
	if _, ok := _c.mutation.ClaimAmount(); !ok {
		return &ValidationError{Name: "claim_amount", err: errors.New(`ent: missing required field "Verification.claim_amount"`)}
	}
	if v, ok := _c.mutation.ClaimAmount(); ok {
		if err := verification.ClaimAmountValidator(v); err != nil {
			return &ValidationError{Name: "claim_amount", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimBlockNumber(); !ok {
		return &ValidationError{Name: "claim_block_number", err: errors.New(`ent: missing required field "Verification.claim_block_number"`)}
	}
	if v, ok := _c.mutation.ClaimBlockNumber(); ok {
		if err := verification.ClaimBlockNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_block_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_block_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimFlatNumber(); !ok {
		return &ValidationError{Name: "claim_flat_number", err: errors.New(`ent: missing required field "Verification.claim_flat_number"`)}
	}
	if v, ok := _c.mutation.ClaimFlatNumber(); ok {
		if err := verification.ClaimFlatNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_flat_number", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_flat_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimPurpose(); !ok {
		return &ValidationError{Name: "claim_purpose", err: errors.New(`ent: missing required field "Verification.claim_purpose"`)}
	}
	if v, ok := _c.mutation.ClaimPurpose(); ok {
		if err := verification.ClaimPurposeValidator(v); err != nil {
			return &ValidationError{Name: "claim_purpose", err: fmt.Errorf(`ent: validator failed for field "Verification.claim_purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Verification.confidence"`)}
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		return &ValidationError{Name: "match_score", err: errors.New(`ent: missing required field "Verification.match_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Verification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Verification.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "Verification.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := verification.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Verification.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Verification.created_at"`)}
	}
	return nil
}

func (_c *VerificationCreate) sqlSave(ctx context.Context) (*Verification, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationCreate) createSpec() (*Verification, *sqlgraph.CreateSpec) {
	var (
		_node = &Verification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verification.Table, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SocietyID(); ok {
		_spec.SetField(verification.FieldSocietyID, field.TypeString, value)
		_node.SocietyID = &value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(verification.FieldMemberID, field.TypeString, value)
		_node.MemberID = &value
	}
	if value, ok := _c.mutation.ClaimAmount(); ok {
		_spec.SetField(verification.FieldClaimAmount, field.TypeString, value)
		_node.ClaimAmount = value
	}
	if value, ok := _c.mutation.ClaimBlockNumber(); ok {
		_spec.SetField(verification.FieldClaimBlockNumber, field.TypeString, value)
		_node.ClaimBlockNumber = value
	}
	if value, ok := _c.mutation.ClaimFlatNumber(); ok {
		_spec.SetField(verification.FieldClaimFlatNumber, field.TypeString, value)
		_node.ClaimFlatNumber = value
	}
	if value, ok := _c.mutation.ClaimPurpose(); ok {
		_spec.SetField(verification.FieldClaimPurpose, field.TypeString, value)
		_node.ClaimPurpose = value
	}
	if value, ok := _c.mutation.ExtractedAmount(); ok {
		_spec.SetField(verification.FieldExtractedAmount, field.TypeFloat64, value)
		_node.ExtractedAmount = &value
	}
	if value, ok := _c.mutation.ExtractedBlockNumber(); ok {
		_spec.SetField(verification.FieldExtractedBlockNumber, field.TypeString, value)
		_node.ExtractedBlockNumber = &value
	}
	if value, ok := _c.mutation.ExtractedFlatNumber(); ok {
		_spec.SetField(verification.FieldExtractedFlatNumber, field.TypeString, value)
		_node.ExtractedFlatNumber = &value
	}
	if value, ok := _c.mutation.ExtractedPaymentDate(); ok {
		_spec.SetField(verification.FieldExtractedPaymentDate, field.TypeString, value)
		_node.ExtractedPaymentDate = &value
	}
	if value, ok := _c.mutation.ExtractedPurpose(); ok {
		_spec.SetField(verification.FieldExtractedPurpose, field.TypeString, value)
		_node.ExtractedPurpose = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(verification.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(verification.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(verification.FieldMatchScore, field.TypeFloat64, value)
		_node.MatchScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verification.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(verification.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VerificationCreateBulk is the builder for creating many Verification entities in bulk.
type VerificationCreateBulk struct {
	config
	err      error
	builders []*VerificationCreate
}

// Save creates the Verification entities in the database.
func (_c *VerificationCreateBulk) Save(ctx context.Context) ([]*Verification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VerificationCreateBulk) SaveX(ctx context.Context) []*Verification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
