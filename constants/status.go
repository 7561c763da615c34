package constants

// VerificationStatus is the canonical status for rows in verification_audit.
type VerificationStatus string

// Stable values (store these exact strings in DB).
const (
	VerificationApproved VerificationStatus = "APPROVED" // match score cleared the threshold
	VerificationRejected VerificationStatus = "REJECTED" // below threshold (includes all fallback cases)
)

// ReasonCode tells operators why an extraction went the way it did. It never
// changes the caller-facing result; it exists so logs and metrics can tell
// apart "backend not configured" from "backend call failed" from "parsed nothing".
type ReasonCode string

const (
	ReasonOK                    ReasonCode = "OK"                     // remote extraction succeeded
	ReasonBackendUnavailable    ReasonCode = "BACKEND_UNAVAILABLE"    // no client: missing or invalid credentials
	ReasonBackendError          ReasonCode = "BACKEND_ERROR"          // remote call failed (network, auth, quota)
	ReasonProcessorUnconfigured ReasonCode = "PROCESSOR_UNCONFIGURED" // processor ID missing or left as placeholder
	ReasonEmptyText             ReasonCode = "EMPTY_TEXT"             // backend returned a document with no text
)

// VerificationStatuses holds the allowed values for the status field in Verification.
var VerificationStatuses = []string{string(VerificationApproved), string(VerificationRejected)}
