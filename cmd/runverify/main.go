package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/societydesk/receipt-verifier/constants"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/docai"
	"github.com/societydesk/receipt-verifier/internal/extract"
	"github.com/societydesk/receipt-verifier/internal/repository"
	"github.com/societydesk/receipt-verifier/internal/verify"
)

// runverify runs the verification pipeline once for a receipt file and a
// claim JSON file, printing the decision to stdout. With DB_URL set the run
// is also recorded in the audit store.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runverify <receipt-file> <claim.json>")
		os.Exit(2)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read receipt file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	claimJSON, err := os.ReadFile(os.Args[2])
	if err != nil {
		logger.Error("read claim file", "path", os.Args[2], "error", err)
		os.Exit(1)
	}
	claim, err := verify.ParseClaimJSON(claimJSON)
	if err != nil {
		logger.Error("invalid claim", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := common.LoadConfig()

	client, err := docai.NewClient(ctx, cfg.DocAI, logger)
	if err != nil {
		if errors.Is(err, docai.ErrNotConfigured) {
			logger.Warn("document AI not configured; using manual-entry fallback")
		} else {
			logger.Warn("document AI init failed; using manual-entry fallback", "error", err)
		}
		client = nil
	}

	adapter := extract.NewDocAIAdapter(client, logger)
	verifier := verify.NewVerifier(adapter, cfg.Verify.ApprovalThreshold, logger)

	doc := extract.RawDocument{
		Content:  content,
		MIMEType: constants.MIMETypeForExt(filepath.Ext(os.Args[1])),
	}
	res := verifier.VerifyReceipt(ctx, doc, claim)

	if cfg.Database.DSN != "" {
		recordAudit(ctx, cfg, claim, res, logger)
	}

	out := map[string]any{
		"approved":    res.Approved,
		"status":      res.Status,
		"match_score": res.MatchScore,
		"confidence":  res.Extraction.Confidence,
		"reason":      res.Extraction.Reason,
		"fields":      res.Extraction.Fields,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}

func recordAudit(ctx context.Context, cfg *common.Config, claim verify.ManualClaim, res verify.Result, logger *slog.Logger) {
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Warn("open audit store", "error", err)
		return
	}
	defer repository.Close(entc, pool, logger)

	repo := repository.NewVerificationRepository(entc, logger)
	_, err = repo.Record(ctx, &repository.RecordRequest{
		ClaimAmount:          claim.Amount,
		ClaimBlockNumber:     claim.BlockNumber,
		ClaimFlatNumber:      claim.FlatNumber,
		ClaimPurpose:         claim.Purpose,
		ExtractedAmount:      res.Extraction.Fields.Amount,
		ExtractedBlockNumber: res.Extraction.Fields.BlockNumber,
		ExtractedFlatNumber:  res.Extraction.Fields.FlatNumber,
		ExtractedPaymentDate: res.Extraction.Fields.PaymentDate,
		ExtractedPurpose:     res.Extraction.Fields.Purpose,
		RawText:              res.Extraction.RawText,
		Confidence:           res.Extraction.Confidence,
		MatchScore:           res.MatchScore,
		Status:               string(res.Status),
		Reason:               string(res.Extraction.Reason),
	})
	if err != nil {
		logger.Warn("record audit", "error", err)
	}
}
