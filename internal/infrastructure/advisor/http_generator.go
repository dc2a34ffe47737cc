package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/finsight/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const generatePath = "/v1/recommendations"

// HTTPGenerator calls an external advisory engine over HTTP to produce
// recommendation payloads from a metrics snapshot.
type HTTPGenerator struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPGenerator creates a generator client for the configured endpoint
func NewHTTPGenerator(cfg config.AdvisorConfig, logger *zap.Logger) *HTTPGenerator {
	timeout := cfg.GeneratorTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGenerator{
		baseURL: cfg.GeneratorEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type generateRequest struct {
	Type    advisor.RecommendationType `json:"type"`
	Metrics advisor.MetricsSnapshot    `json:"metrics"`
}

// Generate requests a recommendation of the given type for the snapshot
func (g *HTTPGenerator) Generate(ctx context.Context, recType advisor.RecommendationType, snapshot advisor.MetricsSnapshot) (advisor.RecommendationPayload, error) {
	body, err := json.Marshal(generateRequest{
		Type:    recType,
		Metrics: snapshot,
	})
	if err != nil {
		return advisor.RecommendationPayload{}, fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return advisor.RecommendationPayload{}, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return advisor.RecommendationPayload{}, fmt.Errorf("advisory engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("Advisory engine returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("type", recType.String()),
			zap.ByteString("body", respBody))
		return advisor.RecommendationPayload{}, fmt.Errorf("advisory engine returned status %d", resp.StatusCode)
	}

	var payload advisor.RecommendationPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return advisor.RecommendationPayload{}, fmt.Errorf("failed to decode advisory engine response: %w", err)
	}

	if payload.Type == "" {
		payload.Type = recType
	}
	if payload.GeneratedAt.IsZero() {
		payload.GeneratedAt = time.Now().UTC()
	}

	g.logger.Debug("Generated recommendation via advisory engine",
		zap.String("type", recType.String()),
		zap.Duration("elapsed", time.Since(start)))

	return payload, nil
}
