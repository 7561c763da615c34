// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/societydesk/receipt-verifier/gen/ent/predicate"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeVerification = "Verification"
)

// VerificationMutation represents an operation that mutates the Verification nodes in the graph.
type VerificationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	society_id             *string
	member_id              *string
	claim_amount           *string
	claim_block_number     *string
	claim_flat_number      *string
	claim_purpose          *string
	extracted_amount       *float64
	addextracted_amount    *float64
	extracted_block_number *string
	extracted_flat_number  *string
	extracted_payment_date *string
	extracted_purpose      *string
	raw_text               *string
	confidence             *float64
	addconfidence          *float64
	match_score            *float64
	addmatch_score         *float64
	status                 *string
	reason                 *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Verification, error)
	predicates             []predicate.Verification
}

var _ ent.Mutation = (*VerificationMutation)(nil)

// verificationOption allows management of the mutation configuration using functional options.
type verificationOption func(*VerificationMutation)

// newVerificationMutation creates new mutation for the Verification entity.
func newVerificationMutation(c config, op Op, opts ...verificationOption) *VerificationMutation {
	m := &VerificationMutation{
		config:        c,
		op:            op,
		typ:           TypeVerification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationID sets the ID field of the mutation.
func withVerificationID(id uuid.UUID) verificationOption {
	return func(m *VerificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Verification
		)
		m.oldValue = func(ctx context.Context) (*Verification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Verification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerification sets the old Verification of the mutation.
func withVerification(node *Verification) verificationOption {
	return func(m *VerificationMutation) {
		m.oldValue = func(context.Context) (*Verification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Verification entities.
func (m *VerificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Verification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSocietyID sets the "society_id" field.
func (m *VerificationMutation) SetSocietyID(s string) {
	m.society_id = &s
}

// SocietyID returns the value of the "society_id" field in the mutation.
func (m *VerificationMutation) SocietyID() (r string, exists bool) {
	v := m.society_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSocietyID returns the old "society_id" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldSocietyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocietyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocietyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocietyID: %w", err)
	}
	return oldValue.SocietyID, nil
}

// ClearSocietyID clears the value of the "society_id" field.
func (m *VerificationMutation) ClearSocietyID() {
	m.society_id = nil
	m.clearedFields[verification.FieldSocietyID] = struct{}{}
}

// SocietyIDCleared returns if the "society_id" field was cleared in this mutation.
func (m *VerificationMutation) SocietyIDCleared() bool {
	_, ok := m.clearedFields[verification.FieldSocietyID]
	return ok
}

// ResetSocietyID resets all changes to the "society_id" field.
func (m *VerificationMutation) ResetSocietyID() {
	m.society_id = nil
	delete(m.clearedFields, verification.FieldSocietyID)
}

// SetMemberID sets the "member_id" field.
func (m *VerificationMutation) SetMemberID(s string) {
	m.member_id = &s
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *VerificationMutation) MemberID() (r string, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldMemberID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ClearMemberID clears the value of the "member_id" field.
func (m *VerificationMutation) ClearMemberID() {
	m.member_id = nil
	m.clearedFields[verification.FieldMemberID] = struct{}{}
}

// MemberIDCleared returns if the "member_id" field was cleared in this mutation.
func (m *VerificationMutation) MemberIDCleared() bool {
	_, ok := m.clearedFields[verification.FieldMemberID]
	return ok
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *VerificationMutation) ResetMemberID() {
	m.member_id = nil
	delete(m.clearedFields, verification.FieldMemberID)
}

// SetClaimAmount sets the "claim_amount" field.
func (m *VerificationMutation) SetClaimAmount(s string) {
	m.claim_amount = &s
}

// ClaimAmount returns the value of the "claim_amount" field in the mutation.
func (m *VerificationMutation) ClaimAmount() (r string, exists bool) {
	v := m.claim_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimAmount returns the old "claim_amount" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldClaimAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimAmount: %w", err)
	}
	return oldValue.ClaimAmount, nil
}

// ResetClaimAmount resets all changes to the "claim_amount" field.
func (m *VerificationMutation) ResetClaimAmount() {
	m.claim_amount = nil
}

// SetClaimBlockNumber sets the "claim_block_number" field.
func (m *VerificationMutation) SetClaimBlockNumber(s string) {
	m.claim_block_number = &s
}

// ClaimBlockNumber returns the value of the "claim_block_number" field in the mutation.
func (m *VerificationMutation) ClaimBlockNumber() (r string, exists bool) {
	v := m.claim_block_number
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimBlockNumber returns the old "claim_block_number" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldClaimBlockNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimBlockNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimBlockNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimBlockNumber: %w", err)
	}
	return oldValue.ClaimBlockNumber, nil
}

// ResetClaimBlockNumber resets all changes to the "claim_block_number" field.
func (m *VerificationMutation) ResetClaimBlockNumber() {
	m.claim_block_number = nil
}

// SetClaimFlatNumber sets the "claim_flat_number" field.
func (m *VerificationMutation) SetClaimFlatNumber(s string) {
	m.claim_flat_number = &s
}

// ClaimFlatNumber returns the value of the "claim_flat_number" field in the mutation.
func (m *VerificationMutation) ClaimFlatNumber() (r string, exists bool) {
	v := m.claim_flat_number
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimFlatNumber returns the old "claim_flat_number" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldClaimFlatNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimFlatNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimFlatNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimFlatNumber: %w", err)
	}
	return oldValue.ClaimFlatNumber, nil
}

// ResetClaimFlatNumber resets all changes to the "claim_flat_number" field.
func (m *VerificationMutation) ResetClaimFlatNumber() {
	m.claim_flat_number = nil
}

// SetClaimPurpose sets the "claim_purpose" field.
func (m *VerificationMutation) SetClaimPurpose(s string) {
	m.claim_purpose = &s
}

// ClaimPurpose returns the value of the "claim_purpose" field in the mutation.
func (m *VerificationMutation) ClaimPurpose() (r string, exists bool) {
	v := m.claim_purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimPurpose returns the old "claim_purpose" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldClaimPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimPurpose: %w", err)
	}
	return oldValue.ClaimPurpose, nil
}

// ResetClaimPurpose resets all changes to the "claim_purpose" field.
func (m *VerificationMutation) ResetClaimPurpose() {
	m.claim_purpose = nil
}

// SetExtractedAmount sets the "extracted_amount" field.
func (m *VerificationMutation) SetExtractedAmount(f float64) {
	m.extracted_amount = &f
	m.addextracted_amount = nil
}

// ExtractedAmount returns the value of the "extracted_amount" field in the mutation.
func (m *VerificationMutation) ExtractedAmount() (r float64, exists bool) {
	v := m.extracted_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAmount returns the old "extracted_amount" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldExtractedAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAmount: %w", err)
	}
	return oldValue.ExtractedAmount, nil
}

// AddExtractedAmount adds f to the "extracted_amount" field.
func (m *VerificationMutation) AddExtractedAmount(f float64) {
	if m.addextracted_amount != nil {
		*m.addextracted_amount += f
	} else {
		m.addextracted_amount = &f
	}
}

// AddedExtractedAmount returns the value that was added to the "extracted_amount" field in this mutation.
func (m *VerificationMutation) AddedExtractedAmount() (r float64, exists bool) {
	v := m.addextracted_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedAmount clears the value of the "extracted_amount" field.
func (m *VerificationMutation) ClearExtractedAmount() {
	m.extracted_amount = nil
	m.addextracted_amount = nil
	m.clearedFields[verification.FieldExtractedAmount] = struct{}{}
}

// ExtractedAmountCleared returns if the "extracted_amount" field was cleared in this mutation.
func (m *VerificationMutation) ExtractedAmountCleared() bool {
	_, ok := m.clearedFields[verification.FieldExtractedAmount]
	return ok
}

// ResetExtractedAmount resets all changes to the "extracted_amount" field.
func (m *VerificationMutation) ResetExtractedAmount() {
	m.extracted_amount = nil
	m.addextracted_amount = nil
	delete(m.clearedFields, verification.FieldExtractedAmount)
}

// SetExtractedBlockNumber sets the "extracted_block_number" field.
func (m *VerificationMutation) SetExtractedBlockNumber(s string) {
	m.extracted_block_number = &s
}

// ExtractedBlockNumber returns the value of the "extracted_block_number" field in the mutation.
func (m *VerificationMutation) ExtractedBlockNumber() (r string, exists bool) {
	v := m.extracted_block_number
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedBlockNumber returns the old "extracted_block_number" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldExtractedBlockNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedBlockNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedBlockNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedBlockNumber: %w", err)
	}
	return oldValue.ExtractedBlockNumber, nil
}

// ClearExtractedBlockNumber clears the value of the "extracted_block_number" field.
func (m *VerificationMutation) ClearExtractedBlockNumber() {
	m.extracted_block_number = nil
	m.clearedFields[verification.FieldExtractedBlockNumber] = struct{}{}
}

// ExtractedBlockNumberCleared returns if the "extracted_block_number" field was cleared in this mutation.
func (m *VerificationMutation) ExtractedBlockNumberCleared() bool {
	_, ok := m.clearedFields[verification.FieldExtractedBlockNumber]
	return ok
}

// ResetExtractedBlockNumber resets all changes to the "extracted_block_number" field.
func (m *VerificationMutation) ResetExtractedBlockNumber() {
	m.extracted_block_number = nil
	delete(m.clearedFields, verification.FieldExtractedBlockNumber)
}

// SetExtractedFlatNumber sets the "extracted_flat_number" field.
func (m *VerificationMutation) SetExtractedFlatNumber(s string) {
	m.extracted_flat_number = &s
}

// ExtractedFlatNumber returns the value of the "extracted_flat_number" field in the mutation.
func (m *VerificationMutation) ExtractedFlatNumber() (r string, exists bool) {
	v := m.extracted_flat_number
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFlatNumber returns the old "extracted_flat_number" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldExtractedFlatNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFlatNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFlatNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFlatNumber: %w", err)
	}
	return oldValue.ExtractedFlatNumber, nil
}

// ClearExtractedFlatNumber clears the value of the "extracted_flat_number" field.
func (m *VerificationMutation) ClearExtractedFlatNumber() {
	m.extracted_flat_number = nil
	m.clearedFields[verification.FieldExtractedFlatNumber] = struct{}{}
}

// ExtractedFlatNumberCleared returns if the "extracted_flat_number" field was cleared in this mutation.
func (m *VerificationMutation) ExtractedFlatNumberCleared() bool {
	_, ok := m.clearedFields[verification.FieldExtractedFlatNumber]
	return ok
}

// ResetExtractedFlatNumber resets all changes to the "extracted_flat_number" field.
func (m *VerificationMutation) ResetExtractedFlatNumber() {
	m.extracted_flat_number = nil
	delete(m.clearedFields, verification.FieldExtractedFlatNumber)
}

// SetExtractedPaymentDate sets the "extracted_payment_date" field.
func (m *VerificationMutation) SetExtractedPaymentDate(s string) {
	m.extracted_payment_date = &s
}

// ExtractedPaymentDate returns the value of the "extracted_payment_date" field in the mutation.
func (m *VerificationMutation) ExtractedPaymentDate() (r string, exists bool) {
	v := m.extracted_payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedPaymentDate returns the old "extracted_payment_date" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldExtractedPaymentDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedPaymentDate: %w", err)
	}
	return oldValue.ExtractedPaymentDate, nil
}

// ClearExtractedPaymentDate clears the value of the "extracted_payment_date" field.
func (m *VerificationMutation) ClearExtractedPaymentDate() {
	m.extracted_payment_date = nil
	m.clearedFields[verification.FieldExtractedPaymentDate] = struct{}{}
}

// ExtractedPaymentDateCleared returns if the "extracted_payment_date" field was cleared in this mutation.
func (m *VerificationMutation) ExtractedPaymentDateCleared() bool {
	_, ok := m.clearedFields[verification.FieldExtractedPaymentDate]
	return ok
}

// ResetExtractedPaymentDate resets all changes to the "extracted_payment_date" field.
func (m *VerificationMutation) ResetExtractedPaymentDate() {
	m.extracted_payment_date = nil
	delete(m.clearedFields, verification.FieldExtractedPaymentDate)
}

// SetExtractedPurpose sets the "extracted_purpose" field.
func (m *VerificationMutation) SetExtractedPurpose(s string) {
	m.extracted_purpose = &s
}

// ExtractedPurpose returns the value of the "extracted_purpose" field in the mutation.
func (m *VerificationMutation) ExtractedPurpose() (r string, exists bool) {
	v := m.extracted_purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedPurpose returns the old "extracted_purpose" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldExtractedPurpose(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedPurpose: %w", err)
	}
	return oldValue.ExtractedPurpose, nil
}

// ClearExtractedPurpose clears the value of the "extracted_purpose" field.
func (m *VerificationMutation) ClearExtractedPurpose() {
	m.extracted_purpose = nil
	m.clearedFields[verification.FieldExtractedPurpose] = struct{}{}
}

// ExtractedPurposeCleared returns if the "extracted_purpose" field was cleared in this mutation.
func (m *VerificationMutation) ExtractedPurposeCleared() bool {
	_, ok := m.clearedFields[verification.FieldExtractedPurpose]
	return ok
}

// ResetExtractedPurpose resets all changes to the "extracted_purpose" field.
func (m *VerificationMutation) ResetExtractedPurpose() {
	m.extracted_purpose = nil
	delete(m.clearedFields, verification.FieldExtractedPurpose)
}

// SetRawText sets the "raw_text" field.
func (m *VerificationMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *VerificationMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *VerificationMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[verification.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *VerificationMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[verification.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *VerificationMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, verification.FieldRawText)
}

// SetConfidence sets the "confidence" field.
func (m *VerificationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VerificationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VerificationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VerificationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VerificationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetMatchScore sets the "match_score" field.
func (m *VerificationMutation) SetMatchScore(f float64) {
	m.match_score = &f
	m.addmatch_score = nil
}

// MatchScore returns the value of the "match_score" field in the mutation.
func (m *VerificationMutation) MatchScore() (r float64, exists bool) {
	v := m.match_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchScore returns the old "match_score" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldMatchScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchScore: %w", err)
	}
	return oldValue.MatchScore, nil
}

// AddMatchScore adds f to the "match_score" field.
func (m *VerificationMutation) AddMatchScore(f float64) {
	if m.addmatch_score != nil {
		*m.addmatch_score += f
	} else {
		m.addmatch_score = &f
	}
}

// AddedMatchScore returns the value that was added to the "match_score" field in this mutation.
func (m *VerificationMutation) AddedMatchScore() (r float64, exists bool) {
	v := m.addmatch_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchScore resets all changes to the "match_score" field.
func (m *VerificationMutation) ResetMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
}

// SetStatus sets the "status" field.
func (m *VerificationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *VerificationMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *VerificationMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *VerificationMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Verification entity.
// If the Verification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VerificationMutation builder.
func (m *VerificationMutation) Where(ps ...predicate.Verification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Verification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Verification).
func (m *VerificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.society_id != nil {
		fields = append(fields, verification.FieldSocietyID)
	}
	if m.member_id != nil {
		fields = append(fields, verification.FieldMemberID)
	}
	if m.claim_amount != nil {
		fields = append(fields, verification.FieldClaimAmount)
	}
	if m.claim_block_number != nil {
		fields = append(fields, verification.FieldClaimBlockNumber)
	}
	if m.claim_flat_number != nil {
		fields = append(fields, verification.FieldClaimFlatNumber)
	}
	if m.claim_purpose != nil {
		fields = append(fields, verification.FieldClaimPurpose)
	}
	if m.extracted_amount != nil {
		fields = append(fields, verification.FieldExtractedAmount)
	}
	if m.extracted_block_number != nil {
		fields = append(fields, verification.FieldExtractedBlockNumber)
	}
	if m.extracted_flat_number != nil {
		fields = append(fields, verification.FieldExtractedFlatNumber)
	}
	if m.extracted_payment_date != nil {
		fields = append(fields, verification.FieldExtractedPaymentDate)
	}
	if m.extracted_purpose != nil {
		fields = append(fields, verification.FieldExtractedPurpose)
	}
	if m.raw_text != nil {
		fields = append(fields, verification.FieldRawText)
	}
	if m.confidence != nil {
		fields = append(fields, verification.FieldConfidence)
	}
	if m.match_score != nil {
		fields = append(fields, verification.FieldMatchScore)
	}
	if m.status != nil {
		fields = append(fields, verification.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, verification.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, verification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verification.FieldSocietyID:
		return m.SocietyID()
	case verification.FieldMemberID:
		return m.MemberID()
	case verification.FieldClaimAmount:
		return m.ClaimAmount()
	case verification.FieldClaimBlockNumber:
		return m.ClaimBlockNumber()
	case verification.FieldClaimFlatNumber:
		return m.ClaimFlatNumber()
	case verification.FieldClaimPurpose:
		return m.ClaimPurpose()
	case verification.FieldExtractedAmount:
		return m.ExtractedAmount()
	case verification.FieldExtractedBlockNumber:
		return m.ExtractedBlockNumber()
	case verification.FieldExtractedFlatNumber:
		return m.ExtractedFlatNumber()
	case verification.FieldExtractedPaymentDate:
		return m.ExtractedPaymentDate()
	case verification.FieldExtractedPurpose:
		return m.ExtractedPurpose()
	case verification.FieldRawText:
		return m.RawText()
	case verification.FieldConfidence:
		return m.Confidence()
	case verification.FieldMatchScore:
		return m.MatchScore()
	case verification.FieldStatus:
		return m.Status()
	case verification.FieldReason:
		return m.Reason()
	case verification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verification.FieldSocietyID:
		return m.OldSocietyID(ctx)
	case verification.FieldMemberID:
		return m.OldMemberID(ctx)
	case verification.FieldClaimAmount:
		return m.OldClaimAmount(ctx)
	case verification.FieldClaimBlockNumber:
		return m.OldClaimBlockNumber(ctx)
	case verification.FieldClaimFlatNumber:
		return m.OldClaimFlatNumber(ctx)
	case verification.FieldClaimPurpose:
		return m.OldClaimPurpose(ctx)
	case verification.FieldExtractedAmount:
		return m.OldExtractedAmount(ctx)
	case verification.FieldExtractedBlockNumber:
		return m.OldExtractedBlockNumber(ctx)
	case verification.FieldExtractedFlatNumber:
		return m.OldExtractedFlatNumber(ctx)
	case verification.FieldExtractedPaymentDate:
		return m.OldExtractedPaymentDate(ctx)
	case verification.FieldExtractedPurpose:
		return m.OldExtractedPurpose(ctx)
	case verification.FieldRawText:
		return m.OldRawText(ctx)
	case verification.FieldConfidence:
		return m.OldConfidence(ctx)
	case verification.FieldMatchScore:
		return m.OldMatchScore(ctx)
	case verification.FieldStatus:
		return m.OldStatus(ctx)
	case verification.FieldReason:
		return m.OldReason(ctx)
	case verification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Verification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verification.FieldSocietyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocietyID(v)
		return nil
	case verification.FieldMemberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case verification.FieldClaimAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimAmount(v)
		return nil
	case verification.FieldClaimBlockNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimBlockNumber(v)
		return nil
	case verification.FieldClaimFlatNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimFlatNumber(v)
		return nil
	case verification.FieldClaimPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimPurpose(v)
		return nil
	case verification.FieldExtractedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAmount(v)
		return nil
	case verification.FieldExtractedBlockNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedBlockNumber(v)
		return nil
	case verification.FieldExtractedFlatNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFlatNumber(v)
		return nil
	case verification.FieldExtractedPaymentDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedPaymentDate(v)
		return nil
	case verification.FieldExtractedPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedPurpose(v)
		return nil
	case verification.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case verification.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case verification.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchScore(v)
		return nil
	case verification.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verification.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case verification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Verification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationMutation) AddedFields() []string {
	var fields []string
	if m.addextracted_amount != nil {
		fields = append(fields, verification.FieldExtractedAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, verification.FieldConfidence)
	}
	if m.addmatch_score != nil {
		fields = append(fields, verification.FieldMatchScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verification.FieldExtractedAmount:
		return m.AddedExtractedAmount()
	case verification.FieldConfidence:
		return m.AddedConfidence()
	case verification.FieldMatchScore:
		return m.AddedMatchScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verification.FieldExtractedAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedAmount(v)
		return nil
	case verification.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case verification.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown Verification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verification.FieldSocietyID) {
		fields = append(fields, verification.FieldSocietyID)
	}
	if m.FieldCleared(verification.FieldMemberID) {
		fields = append(fields, verification.FieldMemberID)
	}
	if m.FieldCleared(verification.FieldExtractedAmount) {
		fields = append(fields, verification.FieldExtractedAmount)
	}
	if m.FieldCleared(verification.FieldExtractedBlockNumber) {
		fields = append(fields, verification.FieldExtractedBlockNumber)
	}
	if m.FieldCleared(verification.FieldExtractedFlatNumber) {
		fields = append(fields, verification.FieldExtractedFlatNumber)
	}
	if m.FieldCleared(verification.FieldExtractedPaymentDate) {
		fields = append(fields, verification.FieldExtractedPaymentDate)
	}
	if m.FieldCleared(verification.FieldExtractedPurpose) {
		fields = append(fields, verification.FieldExtractedPurpose)
	}
	if m.FieldCleared(verification.FieldRawText) {
		fields = append(fields, verification.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationMutation) ClearField(name string) error {
	switch name {
	case verification.FieldSocietyID:
		m.ClearSocietyID()
		return nil
	case verification.FieldMemberID:
		m.ClearMemberID()
		return nil
	case verification.FieldExtractedAmount:
		m.ClearExtractedAmount()
		return nil
	case verification.FieldExtractedBlockNumber:
		m.ClearExtractedBlockNumber()
		return nil
	case verification.FieldExtractedFlatNumber:
		m.ClearExtractedFlatNumber()
		return nil
	case verification.FieldExtractedPaymentDate:
		m.ClearExtractedPaymentDate()
		return nil
	case verification.FieldExtractedPurpose:
		m.ClearExtractedPurpose()
		return nil
	case verification.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown Verification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationMutation) ResetField(name string) error {
	switch name {
	case verification.FieldSocietyID:
		m.ResetSocietyID()
		return nil
	case verification.FieldMemberID:
		m.ResetMemberID()
		return nil
	case verification.FieldClaimAmount:
		m.ResetClaimAmount()
		return nil
	case verification.FieldClaimBlockNumber:
		m.ResetClaimBlockNumber()
		return nil
	case verification.FieldClaimFlatNumber:
		m.ResetClaimFlatNumber()
		return nil
	case verification.FieldClaimPurpose:
		m.ResetClaimPurpose()
		return nil
	case verification.FieldExtractedAmount:
		m.ResetExtractedAmount()
		return nil
	case verification.FieldExtractedBlockNumber:
		m.ResetExtractedBlockNumber()
		return nil
	case verification.FieldExtractedFlatNumber:
		m.ResetExtractedFlatNumber()
		return nil
	case verification.FieldExtractedPaymentDate:
		m.ResetExtractedPaymentDate()
		return nil
	case verification.FieldExtractedPurpose:
		m.ResetExtractedPurpose()
		return nil
	case verification.FieldRawText:
		m.ResetRawText()
		return nil
	case verification.FieldConfidence:
		m.ResetConfidence()
		return nil
	case verification.FieldMatchScore:
		m.ResetMatchScore()
		return nil
	case verification.FieldStatus:
		m.ResetStatus()
		return nil
	case verification.FieldReason:
		m.ResetReason()
		return nil
	case verification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Verification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Verification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Verification edge %s", name)
}
