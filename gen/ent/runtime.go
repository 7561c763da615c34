// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/societydesk/receipt-verifier/db/ent/schema"
	"github.com/societydesk/receipt-verifier/gen/ent/verification"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	verificationFields := schema.Verification{}.Fields()
	_ = verificationFields
	// verificationDescClaimAmount is the schema descriptor for claim_amount field.
	verificationDescClaimAmount := verificationFields[3].Descriptor()
	// verification.ClaimAmountValidator is a validator for the "claim_amount" field. It is called by the builders before save.
	verification.ClaimAmountValidator = verificationDescClaimAmount.Validators[0].(func(string) error)
	// verificationDescClaimBlockNumber is the schema descriptor for claim_block_number field.
	verificationDescClaimBlockNumber := verificationFields[4].Descriptor()
	// verification.ClaimBlockNumberValidator is a validator for the "claim_block_number" field. It is called by the builders before save.
	verification.ClaimBlockNumberValidator = verificationDescClaimBlockNumber.Validators[0].(func(string) error)
	// verificationDescClaimFlatNumber is the schema descriptor for claim_flat_number field.
	verificationDescClaimFlatNumber := verificationFields[5].Descriptor()
	// verification.ClaimFlatNumberValidator is a validator for the "claim_flat_number" field. It is called by the builders before save.
	verification.ClaimFlatNumberValidator = verificationDescClaimFlatNumber.Validators[0].(func(string) error)
	// verificationDescClaimPurpose is the schema descriptor for claim_purpose field.
	verificationDescClaimPurpose := verificationFields[6].Descriptor()
	// verification.ClaimPurposeValidator is a validator for the "claim_purpose" field. It is called by the builders before save.
	verification.ClaimPurposeValidator = verificationDescClaimPurpose.Validators[0].(func(string) error)
	// verificationDescStatus is the schema descriptor for status field.
	verificationDescStatus := verificationFields[15].Descriptor()
	// verification.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	verification.StatusValidator = func() func(string) error {
		validators := verificationDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verificationDescReason is the schema descriptor for reason field.
	verificationDescReason := verificationFields[16].Descriptor()
	// verification.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	verification.ReasonValidator = verificationDescReason.Validators[0].(func(string) error)
	// verificationDescCreatedAt is the schema descriptor for created_at field.
	verificationDescCreatedAt := verificationFields[17].Descriptor()
	// verification.DefaultCreatedAt holds the default value on creation for the created_at field.
	verification.DefaultCreatedAt = verificationDescCreatedAt.Default.(func() time.Time)
	// verificationDescID is the schema descriptor for id field.
	verificationDescID := verificationFields[0].Descriptor()
	// verification.DefaultID holds the default value on creation for the id field.
	verification.DefaultID = verificationDescID.Default.(func() uuid.UUID)
}
