package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextIDs(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, SocietyIDFromContext(ctx))
	assert.Empty(t, MemberIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithSocietyID(ctx, "soc-1")
	ctx = WithMemberID(ctx, "mem-1")

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "soc-1", SocietyIDFromContext(ctx))
	assert.Equal(t, "mem-1", MemberIDFromContext(ctx))
}
