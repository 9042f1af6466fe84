package insighting

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

const chartNameMaxRunes = 15

// BarPoint é um ponto da série "Gasto vs Revenue por Anuncio"
type BarPoint struct {
	Name    string  `json:"name"`
	Gasto   float64 `json:"gasto"`
	Revenue float64 `json:"revenue"`
	Leads   int     `json:"leads"`
	Ventas  int     `json:"ventas"`
}

// PiePoint é uma fatia da distribuição de gasto
type PiePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PrepareBarSeries monta a série de barras a partir da lista (já filtrada) de anúncios
func PrepareBarSeries(ads []domain.AdMetricRow) []BarPoint {
	points := make([]BarPoint, 0, len(ads))
	for _, ad := range ads {
		points = append(points, BarPoint{
			Name:    chartName(ad.AdName),
			Gasto:   ad.Spend,
			Revenue: ad.Revenue,
			Leads:   ad.Leads,
			Ventas:  ad.Sales,
		})
	}
	return points
}

// PreparePieSeries monta a distribuição de gasto; anúncios sem gasto ficam de fora
func PreparePieSeries(ads []domain.AdMetricRow) []PiePoint {
	points := make([]PiePoint, 0, len(ads))
	for _, ad := range ads {
		if ad.Spend <= 0 {
			continue
		}
		points = append(points, PiePoint{
			Name:  chartName(ad.AdName),
			Value: ad.Spend,
		})
	}
	return points
}

func chartName(name string) string {
	if name == "" {
		return "Ad"
	}
	runes := []rune(name)
	if len(runes) > chartNameMaxRunes {
		return string(runes[:chartNameMaxRunes])
	}
	return name
}
