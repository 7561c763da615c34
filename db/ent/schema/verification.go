package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/societydesk/receipt-verifier/constants"
	"github.com/societydesk/receipt-verifier/db/ent/schema/utils"
)

// Verification is the audit row appended for every receipt verification run.
// It is the operator-facing record of what the pipeline saw and decided;
// the pipeline itself never reads it back.
type Verification struct{ ent.Schema }

func (Verification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_audit"},
	}
}

func (Verification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("society_id").Optional().Nillable(),
		field.String("member_id").Optional().Nillable(),

		// claim as submitted
		field.String("claim_amount").NotEmpty(),
		field.String("claim_block_number").NotEmpty(),
		field.String("claim_flat_number").NotEmpty(),
		field.String("claim_purpose").NotEmpty(),

		// what the parser pulled out of the document
		field.Float("extracted_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("extracted_block_number").Optional().Nillable(),
		field.String("extracted_flat_number").Optional().Nillable(),
		field.String("extracted_payment_date").Optional().Nillable(),
		field.String("extracted_purpose").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		field.Float("confidence"),
		field.Float("match_score"),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.VerificationStatuses...)),
		field.String("reason").NotEmpty(),

		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Verification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("society_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
