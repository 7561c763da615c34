package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	verifypb "github.com/societydesk/receipt-verifier/gen/proto/verify/v1"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/docai"
	"github.com/societydesk/receipt-verifier/internal/export"
	"github.com/societydesk/receipt-verifier/internal/extract"
	"github.com/societydesk/receipt-verifier/internal/repository"
	"github.com/societydesk/receipt-verifier/internal/server"
	"github.com/societydesk/receipt-verifier/internal/verify"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Audit store
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Document AI client: built once here; a missing configuration is a
	// supported state and leaves the pipeline on the fallback path.
	var client *docai.Client
	client, err = docai.NewClient(ctx, cfg.DocAI, slogger)
	if err != nil {
		if errors.Is(err, docai.ErrNotConfigured) {
			log.Warnw("document AI not configured; extractions will use the manual-entry fallback")
		} else {
			log.Warnw("document AI init failed; extractions will use the manual-entry fallback", "error", err)
		}
		client = nil
	}

	// Pipeline
	adapter := extract.NewDocAIAdapter(client, slogger)
	verifier := verify.NewVerifier(adapter, cfg.Verify.ApprovalThreshold, slogger)
	auditRepo := repository.NewVerificationRepository(entc, slogger)
	exportSvc := export.NewService(auditRepo, slogger)

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Infof("metrics serving on %s", cfg.Server.MetricsAddr)
		if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
			log.Warnw("metrics listener stopped", "error", err)
		}
	}()

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewVerifyService(verifier, auditRepo, exportSvc, logger)
	verifypb.RegisterVerifyServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
