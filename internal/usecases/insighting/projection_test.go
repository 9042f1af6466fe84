package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

func TestProjectProfit(t *testing.T) {
	rec := WalletReconciliation{AvgProfit: 20000, AvgReturnCost: 15000}
	orders := &domain.OrderSummary{Returned: 2, DeliveredProfit: 100000}

	t.Run("Taxa zero devolve tudo", func(t *testing.T) {
		p := ProjectProfit(ProjectionInput{DeliveryRatePct: 0, Pending: 10}, nil, orders, rec)

		assert.Equal(t, 0, p.ToDeliver)
		assert.Equal(t, 10, p.ToReturn)
		assert.Equal(t, 0.0, p.Gain)
		assert.Equal(t, 150000.0, p.Loss)
	})

	t.Run("Taxa cem entrega tudo", func(t *testing.T) {
		p := ProjectProfit(ProjectionInput{DeliveryRatePct: 100, Pending: 10}, nil, orders, rec)

		assert.Equal(t, 10, p.ToDeliver)
		assert.Equal(t, 0, p.ToReturn)
	})

	t.Run("Arredondamento é half-up", func(t *testing.T) {
		// 10 * 45% = 4.5 arredonda para 5
		p := ProjectProfit(ProjectionInput{DeliveryRatePct: 45, Pending: 10}, nil, orders, rec)
		assert.Equal(t, 5, p.ToDeliver)
		assert.Equal(t, 5, p.ToReturn)

		// 10 * 44% = 4.4 arredonda para 4
		p = ProjectProfit(ProjectionInput{DeliveryRatePct: 44, Pending: 10}, nil, orders, rec)
		assert.Equal(t, 4, p.ToDeliver)
	})

	t.Run("Taxa fora do intervalo é grampeada", func(t *testing.T) {
		p := ProjectProfit(ProjectionInput{DeliveryRatePct: 140, Pending: 10}, nil, orders, rec)
		assert.Equal(t, 10, p.ToDeliver)

		p = ProjectProfit(ProjectionInput{DeliveryRatePct: -30, Pending: 10}, nil, orders, rec)
		assert.Equal(t, 0, p.ToDeliver)
	})

	t.Run("Total projetado combina utilidade atual, ganho, perda e gasto", func(t *testing.T) {
		ads := []domain.AdMetricRow{
			{CampaignName: "A", Spend: 30000},
			{CampaignName: "B", Spend: 12000},
		}

		input := ProjectionInput{
			DeliveryRatePct:  60,
			Pending:          10,
			AdSpendCampaigns: SelectSubset("A"),
		}

		p := ProjectProfit(input, ads, orders, rec)

		assert.Equal(t, 6, p.ToDeliver)
		assert.Equal(t, 4, p.ToReturn)
		assert.Equal(t, 120000.0, p.Gain)
		assert.Equal(t, 60000.0, p.Loss)
		assert.Equal(t, 30000.0, p.AdSpend)
		// 100000 - 2*15000
		assert.Equal(t, 70000.0, p.CurrentUtility)
		// 70000 + 120000 - 60000 - 30000
		assert.Equal(t, 100000.0, p.ProjectedTotal)
	})

	t.Run("Orders nulo não derruba o projetor", func(t *testing.T) {
		p := ProjectProfit(ProjectionInput{DeliveryRatePct: 50, Pending: 4}, nil, nil, rec)

		assert.Equal(t, 2, p.ToDeliver)
		assert.Equal(t, 0.0, p.CurrentUtility)
	})
}
