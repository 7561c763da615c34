package docai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	documentai "google.golang.org/api/documentai/v1"
	"google.golang.org/api/option"

	"github.com/societydesk/receipt-verifier/internal/common"
)

// PlaceholderProcessorID is the value shipped in .env templates; a processor
// left at this value counts as unconfigured.
const PlaceholderProcessorID = "YOUR_PROCESSOR_ID"

// ErrNotConfigured signals that neither credential shape was supplied. The
// composition root treats this as the explicit "backend unavailable" state,
// not as a fatal error.
var ErrNotConfigured = errors.New("docai: no credentials configured")

// Client wraps the Document AI processor endpoint for one process lifetime.
// It is immutable once constructed and safe for concurrent use.
type Client struct {
	svc         *documentai.Service
	projectID   string
	location    string
	processorID string
	logger      *slog.Logger
}

// NewClient builds a Document AI client from either credential shape: a
// base64-encoded service-account bundle, or the discrete key fields. Returns
// ErrNotConfigured when neither shape is present.
func NewClient(ctx context.Context, cfg common.DocAIConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	jsonKey, err := credentialsJSON(cfg)
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, documentai.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Location != "" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("https://%s-documentai.googleapis.com/", cfg.Location)))
	}

	svc, err := documentai.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create documentai service: %w", err)
	}

	logger.Info("docai.client.ready", "project_id", cfg.ProjectID, "location", cfg.Location)
	return &Client{
		svc:         svc,
		projectID:   cfg.ProjectID,
		location:    cfg.Location,
		processorID: cfg.ProcessorID,
		logger:      logger,
	}, nil
}

// credentialsJSON resolves the configured credential shape to a
// service-account JSON key.
func credentialsJSON(cfg common.DocAIConfig) ([]byte, error) {
	if cfg.CredentialsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("decode credentials bundle: %w", err)
		}
		return decoded, nil
	}
	if cfg.ClientEmail != "" && cfg.PrivateKey != "" {
		return BuildServiceAccountJSON(cfg)
	}
	return nil, ErrNotConfigured
}

// BuildServiceAccountJSON assembles a service-account key document from the
// discrete credential fields. Private keys arriving via env vars carry
// escaped newlines; those are restored here.
func BuildServiceAccountJSON(cfg common.DocAIConfig) ([]byte, error) {
	key := map[string]string{
		"type":         "service_account",
		"project_id":   cfg.ProjectID,
		"private_key":  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		"client_email": cfg.ClientEmail,
		"token_uri":    "https://oauth2.googleapis.com/token",
	}
	if cfg.PrivateKeyID != "" {
		key["private_key_id"] = cfg.PrivateKeyID
	}
	if cfg.ClientID != "" {
		key["client_id"] = cfg.ClientID
	}
	return json.Marshal(key)
}

// ProcessorConfigured reports whether a usable processor ID was supplied.
func (c *Client) ProcessorConfigured() bool {
	return c.processorID != "" && c.processorID != PlaceholderProcessorID
}

// Process sends one document to the processor and returns its full text
// (empty string if the response carries no document).
func (c *Client) Process(ctx context.Context, content []byte, mimeType string) (string, error) {
	name := fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.projectID, c.location, c.processorID)
	req := &documentai.GoogleCloudDocumentaiV1ProcessRequest{
		RawDocument: &documentai.GoogleCloudDocumentaiV1RawDocument{
			Content:  base64.StdEncoding.EncodeToString(content),
			MimeType: mimeType,
		},
		SkipHumanReview: true,
	}

	resp, err := c.svc.Projects.Locations.Processors.Process(name, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("process document: %w", err)
	}
	if resp.Document == nil {
		return "", nil
	}
	return resp.Document.Text, nil
}
