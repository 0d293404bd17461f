// Package langfuse talks to the Langfuse HTTP API: ingestion of coach-tip
// traces and feedback scores, prompt management, and a health check.
// An unconfigured client is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const asyncTimeout = 5 * time.Second

type Client interface {
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID without waiting for delivery.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score on an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush waits for queued events and returns any delivery errors since the last flush.
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
}

type TraceInput struct {
	ID       string // generated when empty
	UserID   string
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	Logger      *zap.Logger
}

type client struct {
	baseURL     string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
	log         *zap.Logger

	wg     sync.WaitGroup
	mu     sync.Mutex
	failed []error
}

// NewClient returns a disabled client unless the base URL and both keys are set.
func NewClient(cfg Config) Client {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("langfuse")

	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""
	switch {
	case enabled:
		log.Info("enabled", zap.String("base_url", cfg.BaseURL), zap.String("env", cfg.Environment))
	case cfg.BaseURL == "":
		log.Info("disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Info("disabled: LANGFUSE_PUBLIC_KEY is empty")
	default:
		log.Info("disabled: LANGFUSE_SECRET_KEY is empty")
	}

	return &client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     enabled,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(_ context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.environment != "" {
		metadata["environment"] = c.environment
	}

	c.enqueue(ingestionEvent{
		ID:        uuid.NewString(),
		Type:      "trace-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: traceBody{
			ID:       traceID,
			Name:     in.Name,
			UserID:   in.UserID,
			Input:    in.Input,
			Output:   in.Output,
			Tags:     in.Tags,
			Metadata: metadata,
		},
	})
	return traceID, nil
}

func (c *client) CreateScore(_ context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return errors.New("langfuse: score without trace id")
	}

	c.enqueue(ingestionEvent{
		ID:        uuid.NewString(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:      uuid.NewString(),
			TraceID: in.TraceID,
			Name:    in.Name,
			Value:   in.Value,
			Comment: in.Comment,
		},
	})
	return nil
}

// enqueue sends off the request path; delivery errors are logged and kept for Flush.
func (c *client) enqueue(event ingestionEvent) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			c.log.Warn("async send failed", zap.String("event", event.Type), zap.Error(err))
			c.mu.Lock()
			c.failed = append(c.failed, err)
			c.mu.Unlock()
		}
	}()
}

func (c *client) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err := errors.Join(c.failed...)
	c.failed = nil
	return err
}

// Ping checks the public health endpoint and the credentials.
func (c *client) Ping(ctx context.Context) error {
	if !c.enabled {
		return errLangfuseDisabled
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/public/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
