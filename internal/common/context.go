package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeySocietyID contextKey = "society_id"
	ContextKeyMemberID  contextKey = "member_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithSocietyID adds a society ID to the context
func WithSocietyID(ctx context.Context, societyID string) context.Context {
	return context.WithValue(ctx, ContextKeySocietyID, societyID)
}

// SocietyIDFromContext extracts the society ID from context
func SocietyIDFromContext(ctx context.Context) string {
	if societyID, ok := ctx.Value(ContextKeySocietyID).(string); ok {
		return societyID
	}
	return ""
}

// WithMemberID adds a member ID to the context
func WithMemberID(ctx context.Context, memberID string) context.Context {
	return context.WithValue(ctx, ContextKeyMemberID, memberID)
}

// MemberIDFromContext extracts the member ID from context
func MemberIDFromContext(ctx context.Context) string {
	if memberID, ok := ctx.Value(ContextKeyMemberID).(string); ok {
		return memberID
	}
	return ""
}
