package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", cause)

	assert.Equal(t, "CONFIG_ERROR: DB_URL is required: boom", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	assert.Equal(t, "CONFIG_ERROR: DB_URL is required", bare.Error())
}

func TestGRPCErrorHelpers(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, status.Code(InvalidArgumentError("bad")))
	assert.Equal(t, codes.Internal, status.Code(InternalError("broken")))
}
