package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

func TestBuildRecommendations_ProfitStatus(t *testing.T) {
	tests := []struct {
		name           string
		metrics        *domain.DerivedMetrics
		expectedStatus string
		expectCostRec  bool
	}{
		{
			name:           "Lucro positivo",
			metrics:        &domain.DerivedMetrics{ProfitToday: 123.456},
			expectedStatus: "Profit: $123.46",
			expectCostRec:  false,
		},
		{
			name:           "Lucro zero ainda é lucro",
			metrics:        &domain.DerivedMetrics{ProfitToday: 0},
			expectedStatus: "Profit: $0.00",
			expectCostRec:  false,
		},
		{
			name:           "Prejuízo formata o valor absoluto",
			metrics:        &domain.DerivedMetrics{ProfitToday: -100},
			expectedStatus: "Loss: $100.00",
			expectCostRec:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := buildRecommendations(tt.metrics)

			assert.Equal(t, tt.expectedStatus, outcome.ProfitStatus)

			if tt.expectCostRec {
				assert.Contains(t, outcome.Recommendations, "Reduce costs to improve profitability")
			} else {
				assert.NotContains(t, outcome.Recommendations, "Reduce costs to improve profitability")
			}
		})
	}
}

func TestBuildRecommendations_CACAlert(t *testing.T) {
	tests := []struct {
		name          string
		metrics       *domain.DerivedMetrics
		expectedAlert string
	}{
		{
			name:          "Variação acima do limite dispara o alerta",
			metrics:       &domain.DerivedMetrics{CACToday: 20, CACYesterday: 15},
			expectedAlert: "CAC increased by 33.33%, which is significant.",
		},
		{
			name:    "Variação de exatamente 20% não dispara - comparação estrita",
			metrics: &domain.DerivedMetrics{CACToday: 12, CACYesterday: 10},
		},
		{
			name:          "Variação logo acima de 20% dispara",
			metrics:       &domain.DerivedMetrics{CACToday: 12.01, CACYesterday: 10},
			expectedAlert: "CAC increased by 20.10%, which is significant.",
		},
		{
			name:    "CAC de ontem zerado nunca dispara, qualquer que seja o de hoje",
			metrics: &domain.DerivedMetrics{CACToday: 1000, CACYesterday: 0},
		},
		{
			name:    "Queda de CAC não dispara",
			metrics: &domain.DerivedMetrics{CACToday: 5, CACYesterday: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := buildRecommendations(tt.metrics)

			if tt.expectedAlert == "" {
				assert.Empty(t, outcome.Alerts)
				assert.NotContains(t, outcome.Recommendations, "Review marketing campaigns for efficiency")
				return
			}

			// Exatamente um alerta com a recomendação correspondente
			assert.Equal(t, []string{tt.expectedAlert}, outcome.Alerts)
			assert.Contains(t, outcome.Recommendations, "Review marketing campaigns for efficiency")
		})
	}
}

func TestBuildRecommendations_SalesGrowth(t *testing.T) {
	tests := []struct {
		name        string
		metrics     *domain.DerivedMetrics
		expectedRec string
	}{
		{
			name:        "Crescimento de vendas sugere aumento de verba",
			metrics:     &domain.DerivedMetrics{SalesChange: 11.1111111},
			expectedRec: "Consider increasing advertising budget due to 11.11% sales growth",
		},
		{
			name:    "Variação zero não dispara - comparação estrita",
			metrics: &domain.DerivedMetrics{SalesChange: 0},
		},
		{
			name:    "Queda de vendas não dispara",
			metrics: &domain.DerivedMetrics{SalesChange: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := buildRecommendations(tt.metrics)

			if tt.expectedRec == "" {
				assert.Empty(t, outcome.Recommendations)
				return
			}

			assert.Equal(t, []string{tt.expectedRec}, outcome.Recommendations)
		})
	}
}
