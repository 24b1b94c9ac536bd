package analyzing

import (
	"fmt"

	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// CACAlertThreshold é a variação percentual de CAC acima da qual um alerta
// é emitido. A comparação é estritamente maior: 20.00% exato não dispara.
const CACAlertThreshold = 20.0

// buildRecommendations avalia o conjunto fixo de regras sobre as métricas e
// monta o resultado final. As regras são independentes (mais de uma pode
// disparar) e a ordem de avaliação define a ordem das listas de saída.
func buildRecommendations(metrics *domain.DerivedMetrics) *domain.Outcome {
	outcome := &domain.Outcome{
		Alerts:          []string{},
		Recommendations: []string{},
	}

	// 1. Status de lucro ou prejuízo
	if metrics.ProfitToday >= 0 {
		outcome.ProfitStatus = fmt.Sprintf("Profit: $%.2f", metrics.ProfitToday)
	} else {
		outcome.ProfitStatus = fmt.Sprintf("Loss: $%.2f", -metrics.ProfitToday)
		outcome.Recommendations = append(outcome.Recommendations, "Reduce costs to improve profitability")
	}

	// 2. Alerta de aumento significativo de CAC. Com CAC de ontem zerado a
	// regra nunca dispara, qualquer que seja o CAC de hoje
	if metrics.CACYesterday > 0 {
		cacChange := (metrics.CACToday - metrics.CACYesterday) / metrics.CACYesterday * 100
		if cacChange > CACAlertThreshold {
			outcome.Alerts = append(outcome.Alerts, fmt.Sprintf("CAC increased by %.2f%%, which is significant.", cacChange))
			outcome.Recommendations = append(outcome.Recommendations, "Review marketing campaigns for efficiency")
		}
	}

	// 3. Sugestão de verba quando as vendas estão crescendo
	if metrics.SalesChange > 0 {
		outcome.Recommendations = append(
			outcome.Recommendations,
			fmt.Sprintf("Consider increasing advertising budget due to %.2f%% sales growth", metrics.SalesChange),
		)
	}

	return outcome
}
