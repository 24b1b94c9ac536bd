package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// Analyzer executa o pipeline de análise diária sobre um snapshot
type Analyzer interface {
	Analyze(snapshot *domain.Snapshot) (*domain.Outcome, error)
}

// Service implementa a interface Analyzer
type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config) Analyzer {
	return &Service{
		cfg: cfg,
	}
}

// Analyze roda os três estágios em sequência: validação, cálculo de métricas
// e geração de recomendações. Cada invocação é independente e sem estado
// compartilhado, então chamadas concorrentes são seguras.
func (s *Service) Analyze(snapshot *domain.Snapshot) (*domain.Outcome, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}

	metrics := calculateMetrics(snapshot)

	logrus.WithFields(logrus.Fields{
		"profit_today": metrics.ProfitToday,
		"cac_today":    metrics.CACToday,
		"sales_change": metrics.SalesChange,
	}).Debug("analysis: derived metrics calculated")

	return buildRecommendations(metrics), nil
}
