package advisor

import (
	appadvisor "github.com/finsight/backend/internal/application/advisor"
	"github.com/finsight/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

var (
	_ appadvisor.Generator = (*HTTPGenerator)(nil)
	_ appadvisor.Generator = (*RulesGenerator)(nil)
)

// NewGenerator selects the generator implementation from configuration.
// An empty endpoint selects the built-in heuristics.
func NewGenerator(cfg config.AdvisorConfig, logger *zap.Logger) appadvisor.Generator {
	if cfg.GeneratorEndpoint == "" {
		logger.Info("No advisory engine endpoint configured, using built-in rules generator")
		return NewRulesGenerator()
	}
	logger.Info("Using external advisory engine", zap.String("endpoint", cfg.GeneratorEndpoint))
	return NewHTTPGenerator(cfg, logger)
}
