package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnLifetime)
	assert.Equal(t, "us", cfg.DocAI.Location)
	assert.Equal(t, 0.85, cfg.Verify.ApprovalThreshold)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/verify")
	t.Setenv("GRPC_ADDR", ":7070")
	t.Setenv("DOCAI_PROCESSOR_ID", "abc123")
	t.Setenv("APPROVAL_THRESHOLD", "0.9")
	t.Setenv("DB_MAX_CONNS", "50")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://localhost:5432/verify", cfg.Database.DSN)
	assert.Equal(t, ":7070", cfg.Server.GRPCAddr)
	assert.Equal(t, "abc123", cfg.DocAI.ProcessorID)
	assert.Equal(t, 0.9, cfg.Verify.ApprovalThreshold)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("APPROVAL_THRESHOLD", "not-a-number")
	t.Setenv("DB_MAX_CONNS", "lots")

	cfg := LoadConfig()

	assert.Equal(t, 0.85, cfg.Verify.ApprovalThreshold)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "file:verify.db"},
			Server:   ServerConfig{GRPCAddr: ":8080"},
			Verify:   VerifyConfig{ApprovalThreshold: 0.85},
		}
	}

	require.NoError(t, valid().Validate())

	noDSN := valid()
	noDSN.Database.DSN = ""
	assert.Error(t, noDSN.Validate())

	badThreshold := valid()
	badThreshold.Verify.ApprovalThreshold = 1.5
	assert.Error(t, badThreshold.Validate())

	// An unconfigured document-AI backend must pass validation.
	require.NoError(t, valid().Validate())
}
