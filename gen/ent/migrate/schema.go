// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// VerificationAuditColumns holds the columns for the "verification_audit" table.
	VerificationAuditColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "society_id", Type: field.TypeString, Nullable: true},
		{Name: "member_id", Type: field.TypeString, Nullable: true},
		{Name: "claim_amount", Type: field.TypeString},
		{Name: "claim_block_number", Type: field.TypeString},
		{Name: "claim_flat_number", Type: field.TypeString},
		{Name: "claim_purpose", Type: field.TypeString},
		{Name: "extracted_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "extracted_block_number", Type: field.TypeString, Nullable: true},
		{Name: "extracted_flat_number", Type: field.TypeString, Nullable: true},
		{Name: "extracted_payment_date", Type: field.TypeString, Nullable: true},
		{Name: "extracted_purpose", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "match_score", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VerificationAuditTable holds the schema information for the "verification_audit" table.
	VerificationAuditTable = &schema.Table{
		Name:       "verification_audit",
		Columns:    VerificationAuditColumns,
		PrimaryKey: []*schema.Column{VerificationAuditColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verification_society_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationAuditColumns[1], VerificationAuditColumns[17]},
			},
			{
				Name:    "verification_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationAuditColumns[15], VerificationAuditColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		VerificationAuditTable,
	}
)

func init() {
	VerificationAuditTable.Annotation = &entsql.Annotation{
		Table: "verification_audit",
	}
}
