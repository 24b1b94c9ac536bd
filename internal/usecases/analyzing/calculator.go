package analyzing

import (
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// calculateMetrics deriva as métricas de um snapshot já validado. Toda
// divisão com denominador zero resulta em 0 em vez de NaN ou erro, mantendo
// o pipeline total. Nenhum arredondamento acontece neste estágio.
func calculateMetrics(snapshot *domain.Snapshot) *domain.DerivedMetrics {
	today := snapshot.Today
	yesterday := snapshot.Yesterday

	metrics := &domain.DerivedMetrics{
		ProfitToday:     today.Sales - today.Costs,
		ProfitYesterday: yesterday.Sales - yesterday.Costs,
	}

	// CAC = custos / clientes; um dia sem clientes mapeia para CAC 0
	if today.Customers > 0 {
		metrics.CACToday = today.Costs / float64(today.Customers)
	}

	if yesterday.Customers > 0 {
		metrics.CACYesterday = yesterday.Costs / float64(yesterday.Customers)
	}

	// Variações percentuais relativas ao dia anterior; base zero mapeia
	// para 0, não para um sinal real de "sem mudança"
	if yesterday.Sales > 0 {
		metrics.SalesChange = (today.Sales - yesterday.Sales) / yesterday.Sales * 100
	}

	if yesterday.Costs > 0 {
		metrics.CostChange = (today.Costs - yesterday.Costs) / yesterday.Costs * 100
	}

	return metrics
}
