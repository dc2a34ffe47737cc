package advisor

import (
	"context"

	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/finsight/backend/internal/domain/finance"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MetricsService assembles a financial metrics snapshot from the
// owner's raw records.
type MetricsService struct {
	assets      finance.AssetRepository
	income      finance.IncomeRepository
	liabilities finance.LiabilityRepository
	cards       finance.CreditCardRepository
	logger      *zap.Logger
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(
	assets finance.AssetRepository,
	income finance.IncomeRepository,
	liabilities finance.LiabilityRepository,
	cards finance.CreditCardRepository,
	logger *zap.Logger,
) *MetricsService {
	return &MetricsService{
		assets:      assets,
		income:      income,
		liabilities: liabilities,
		cards:       cards,
		logger:      logger,
	}
}

// Snapshot loads the owner's assets, income records, liabilities and
// credit cards and aggregates them into a metrics snapshot. The four
// collections are fetched concurrently.
func (s *MetricsService) Snapshot(ctx context.Context, ownerID uuid.UUID) (advisor.MetricsSnapshot, error) {
	var (
		assets      []finance.Asset
		income      []finance.IncomeRecord
		liabilities []finance.Liability
		cards       []finance.CreditCardAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = s.assets.AllForOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.income.AllForOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		liabilities, err = s.liabilities.AllForOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = s.cards.AllForOwner(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load records for metrics snapshot",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return advisor.MetricsSnapshot{}, err
	}

	snapshot := advisor.Aggregate(assets, income, liabilities, cards)

	s.logger.Debug("Metrics snapshot computed",
		zap.String("owner_id", ownerID.String()),
		zap.Int("assets", len(assets)),
		zap.Int("income_records", len(income)),
		zap.Int("liabilities", len(liabilities)),
		zap.Int("credit_cards", len(cards)))

	return snapshot, nil
}
