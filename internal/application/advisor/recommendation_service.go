package advisor

import (
	"context"
	"time"

	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/finsight/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator produces recommendation payloads for a metrics snapshot.
// The production implementation calls an external advisory engine.
type Generator interface {
	Generate(ctx context.Context, recType advisor.RecommendationType, snapshot advisor.MetricsSnapshot) (advisor.RecommendationPayload, error)
}

// RecommendationResult wraps a payload with cache provenance.
type RecommendationResult struct {
	Payload   advisor.RecommendationPayload
	FromCache bool
}

// RecommendationService serves recommendations through the memoizing
// cache, falling back to the generator on a miss.
type RecommendationService struct {
	metrics   *MetricsService
	cache     advisor.RecommendationCache
	generator Generator
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRecommendationService creates a new recommendation service. A
// non-positive ttl defers to the cache's default.
func NewRecommendationService(
	metrics *MetricsService,
	cache advisor.RecommendationCache,
	generator Generator,
	ttl time.Duration,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		metrics:   metrics,
		cache:     cache,
		generator: generator,
		ttl:       ttl,
		logger:    logger,
	}
}

// Recommend returns a recommendation of the given type for the owner's
// current financial position. Equivalent snapshots are served from the
// cache without invoking the generator.
func (s *RecommendationService) Recommend(ctx context.Context, ownerID uuid.UUID, recType advisor.RecommendationType) (RecommendationResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "recommendation.recommend",
		telemetry.AttrOwnerID.String(ownerID.String()),
		telemetry.AttrRecommendationType.String(recType.String()),
	)
	defer span.End()

	if !recType.IsValid() {
		return RecommendationResult{}, shared.NewDomainError("INVALID_RECOMMENDATION_TYPE", "Unknown recommendation type")
	}

	snapshot, err := s.metrics.Snapshot(ctx, ownerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return RecommendationResult{}, err
	}

	payload, fromCache, err := s.cache.GetOrGenerate(ctx, recType, snapshot, func(ctx context.Context) (advisor.RecommendationPayload, error) {
		return s.generator.Generate(ctx, recType, snapshot)
	}, s.ttl)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Recommendation generation failed",
			zap.String("owner_id", ownerID.String()),
			zap.String("type", recType.String()),
			zap.Error(err))
		return RecommendationResult{}, shared.NewDomainError("GENERATION_FAILED", "Failed to generate recommendation")
	}

	span.SetAttributes(telemetry.AttrFromCache.Bool(fromCache))

	s.logger.Debug("Recommendation served",
		zap.String("owner_id", ownerID.String()),
		zap.String("type", recType.String()),
		zap.Bool("from_cache", fromCache))

	return RecommendationResult{Payload: payload, FromCache: fromCache}, nil
}

// InvalidateType drops every cached recommendation of the given type
// and returns how many entries were removed.
func (s *RecommendationService) InvalidateType(recType advisor.RecommendationType) (int, error) {
	if !recType.IsValid() {
		return 0, shared.NewDomainError("INVALID_RECOMMENDATION_TYPE", "Unknown recommendation type")
	}
	removed := s.cache.InvalidateType(recType)
	s.logger.Info("Recommendation cache invalidated by type",
		zap.String("type", recType.String()),
		zap.Int("removed", removed))
	return removed, nil
}

// ClearCache drops every cached recommendation.
func (s *RecommendationService) ClearCache() {
	s.cache.Clear()
	s.logger.Info("Recommendation cache cleared")
}

// CacheStats reports cache occupancy and hit counters.
func (s *RecommendationService) CacheStats() advisor.CacheStats {
	return s.cache.Stats()
}

// CleanExpired removes expired entries and returns how many were
// dropped.
func (s *RecommendationService) CleanExpired() int {
	return s.cache.CleanExpired()
}
