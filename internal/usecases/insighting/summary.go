package insighting

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

// Summarize re-deriva os agregados sobre o conjunto filtrado de anúncios.
// Quando nenhum filtro está ativo, o summary do servidor é devolvido tal
// qual; quando o filtro esvazia o conjunto, também — um dashboard todo
// zerado por causa de um filtro seria enganoso.
func Summarize(
	filtered []domain.AdMetricRow,
	campaigns Selection,
	bands Selection,
	server *domain.DashboardSummary,
) domain.DashboardSummary {
	noFilter := campaigns.IsAll() && !bandFilterApplies(bands)

	if (noFilter || len(filtered) == 0) && server != nil {
		return *server
	}

	var summary domain.DashboardSummary
	for _, ad := range filtered {
		summary.TotalSpend += ad.Spend
		summary.TotalRevenue += ad.Revenue
		summary.TotalLeads += ad.Leads
		summary.TotalSales += ad.Sales
	}

	if summary.TotalSales > 0 {
		summary.AverageCPA = summary.TotalSpend / float64(summary.TotalSales)
	}
	if summary.TotalSpend > 0 {
		summary.AverageROAS = summary.TotalRevenue / summary.TotalSpend
	}
	summary.Profit = summary.TotalRevenue - summary.TotalSpend

	return summary
}
