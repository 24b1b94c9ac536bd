package domain

// DailyMetrics representa os números brutos de um único dia de operação.
// Os valores são fornecidos integralmente pelo chamador e não são alterados
// pelo pipeline.
type DailyMetrics struct {
	Sales     float64 `json:"sales"`
	Costs     float64 `json:"costs"`
	Customers int     `json:"customers"`
}

// Snapshot é o par hoje/ontem que alimenta uma análise. Os dois dias
// precisam estar presentes; a ausência é falha de validação, não default.
type Snapshot struct {
	Today     *DailyMetrics `json:"today"`
	Yesterday *DailyMetrics `json:"yesterday"`
}

// DerivedMetrics guarda as métricas calculadas a partir de um Snapshot.
// Nenhum arredondamento acontece aqui; a precisão completa segue para a
// geração de recomendações, que formata na exibição.
type DerivedMetrics struct {
	ProfitToday     float64 `json:"profit_today"`
	ProfitYesterday float64 `json:"profit_yesterday"`
	CACToday        float64 `json:"cac_today"`
	CACYesterday    float64 `json:"cac_yesterday"`
	SalesChange     float64 `json:"sales_change"`
	CostChange      float64 `json:"cost_change"`
}

// Outcome é o resultado final de uma análise. Alerts e Recommendations
// preservam a ordem de avaliação das regras e nunca são nil, para que a
// serialização produza listas vazias em vez de null.
type Outcome struct {
	ProfitStatus    string   `json:"profit_status"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}
