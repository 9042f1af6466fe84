package domain

// AdMetricRow é o snapshot imutável de métricas de um anúncio para o
// período selecionado, já calculado pelo backend
type AdMetricRow struct {
	AdID                   string  `json:"ad_id"`
	AdName                 string  `json:"ad_name"`
	AdsetName              string  `json:"adset_name"`
	CampaignName           string  `json:"campaign_name"`
	Spend                  float64 `json:"spend"`
	Revenue                float64 `json:"revenue"`
	Leads                  int     `json:"leads"`
	Sales                  int     `json:"sales"`
	CPA                    float64 `json:"cpa"`
	ROAS                   float64 `json:"roas"`
	CTR                    float64 `json:"ctr"`
	CPM                    float64 `json:"cpm"`
	DailyBudget            float64 `json:"daily_budget"`
	LifetimeBudget         float64 `json:"lifetime_budget"`
	MessagingConversations int     `json:"messaging_conversations"`
	CostPerMessaging       float64 `json:"cost_per_messaging"`
}

// DashboardSummary são os agregados do período calculados pelo backend
// (ou re-derivados no cliente após um filtro)
type DashboardSummary struct {
	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalLeads   int     `json:"total_leads"`
	TotalSales   int     `json:"total_sales"`
	AverageCPA   float64 `json:"average_cpa"`
	AverageROAS  float64 `json:"average_roas"`
	Profit       float64 `json:"profit"`
}

type DashboardResponse struct {
	Ads     []AdMetricRow     `json:"ads"`
	Summary *DashboardSummary `json:"summary"`
}
