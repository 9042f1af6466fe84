package insighting

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

// ProjectionInput é o cenário ajustado pelo usuário no projetor de
// utilidade por tasa de entrega
type ProjectionInput struct {
	// DeliveryRatePct é o slider do usuário, em [0, 100]
	DeliveryRatePct float64
	// Pending vem pré-preenchido com os pedidos "en ruta" do período
	Pending int
	// AdSpendCampaigns é a seleção de campanhas do projetor, independente
	// do filtro principal do dashboard
	AdSpendCampaigns Selection
}

// Projection é um modelo what-if linear simples, não uma previsão com
// intervalo de confiança — a interface deve apresentá-lo como tal
type Projection struct {
	ToDeliver int     `json:"to_deliver"`
	ToReturn  int     `json:"to_return"`
	Gain      float64 `json:"projected_gain"`
	Loss      float64 `json:"projected_loss"`
	AdSpend   float64 `json:"ad_spend"`

	// CurrentUtility é a utilidade já realizada: profit entregue menos o custo das devoluções
	CurrentUtility float64 `json:"current_utility"`
	ProjectedTotal float64 `json:"projected_total"`
}

// ProjectProfit projeta a utilidade final assumindo que o percentual
// informado dos pedidos pendentes será entregue e o restante devolvido
func ProjectProfit(
	input ProjectionInput,
	ads []domain.AdMetricRow,
	orders *domain.OrderSummary,
	rec WalletReconciliation,
) Projection {
	if orders == nil {
		orders = &domain.OrderSummary{}
	}

	pct := input.DeliveryRatePct
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	var projection Projection

	projection.ToDeliver = utils.RoundHalfUp(float64(input.Pending) * pct / 100)
	projection.ToReturn = input.Pending - projection.ToDeliver

	projection.Gain = float64(projection.ToDeliver) * rec.AvgProfit
	projection.Loss = float64(projection.ToReturn) * rec.AvgReturnCost
	projection.AdSpend = SpendForCampaigns(ads, input.AdSpendCampaigns)

	projection.CurrentUtility = orders.DeliveredProfit - float64(orders.Returned)*rec.AvgReturnCost
	projection.ProjectedTotal = projection.CurrentUtility +
		projection.Gain - projection.Loss - projection.AdSpend

	return projection
}
