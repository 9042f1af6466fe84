package insighting

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

// FilterAds devolve o subconjunto de anúncios que passa pela seleção de
// campanhas e pela seleção de faixas de CPA. Função pura: nunca muta a
// lista crua e é recalculada a cada mudança de filtro.
func FilterAds(ads []domain.AdMetricRow, campaigns Selection, bands Selection) []domain.AdMetricRow {
	bandFilterActive := bandFilterApplies(bands)

	filtered := make([]domain.AdMetricRow, 0, len(ads))
	for _, ad := range ads {
		if !campaigns.Contains(ad.CampaignName) {
			continue
		}
		if bandFilterActive && !bands.Contains(string(ClassifyCPA(ad.CPA))) {
			continue
		}
		filtered = append(filtered, ad)
	}

	return filtered
}

// bandFilterApplies: seleção cobrindo todas as faixas equivale a "sem filtro"
func bandFilterApplies(bands Selection) bool {
	if bands.IsAll() {
		return false
	}
	if bands.Size() == len(AllBands) {
		return false
	}
	return true
}

// CampaignNames lista as campanhas distintas presentes, na ordem de aparição
func CampaignNames(ads []domain.AdMetricRow) []string {
	seen := make(map[string]bool, len(ads))
	names := make([]string, 0, len(ads))
	for _, ad := range ads {
		if !seen[ad.CampaignName] {
			seen[ad.CampaignName] = true
			names = append(names, ad.CampaignName)
		}
	}
	return names
}

// SpendForCampaigns soma o gasto dos anúncios das campanhas selecionadas.
// Usado pelo projetor, que tem uma seleção de campanhas independente da
// seleção principal do dashboard.
func SpendForCampaigns(ads []domain.AdMetricRow, campaigns Selection) float64 {
	total := 0.0
	for _, ad := range ads {
		if campaigns.Contains(ad.CampaignName) {
			total += ad.Spend
		}
	}
	return total
}
