package insighting

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

// DefaultReturnCost é o custo médio assumido de uma devolução (flete de
// retorno, em COP) quando a carteira ainda não tem débitos de devolução
// no período para calcular a média real
const DefaultReturnCost = 20000.0

// WalletReconciliation compara as contagens de pedidos do fulfillment com
// os lançamentos da carteira no mesmo período. Contagens da carteira
// maiores que as de pedidos significam atraso do ledger do backend, não
// erro de dados, por isso os pendentes nunca ficam negativos.
type WalletReconciliation struct {
	AvgProfit     float64 `json:"avg_profit"`
	AvgReturnCost float64 `json:"avg_return_cost"`

	PendingPayoutCount int `json:"pending_payout_count"`
	PendingChargeCount int `json:"pending_charge_count"`

	// ProjectedImpact é o efeito monetário esperado quando o ledger alcançar os pedidos
	ProjectedImpact float64 `json:"projected_impact"`
}

// ReconcileWallet calcula os lançamentos ainda não refletidos na carteira
func ReconcileWallet(orders *domain.OrderSummary, wallet *domain.WalletHistory) WalletReconciliation {
	var rec WalletReconciliation

	if orders == nil {
		orders = &domain.OrderSummary{}
	}
	if wallet == nil {
		wallet = &domain.WalletHistory{}
	}

	if orders.Delivered > 0 {
		rec.AvgProfit = orders.DeliveredProfit / float64(orders.Delivered)
	}

	rec.AvgReturnCost = wallet.Dropshipping.PromedioDevolucion
	if rec.AvgReturnCost <= 0 {
		rec.AvgReturnCost = DefaultReturnCost
	}

	rec.PendingPayoutCount = clampNonNegative(orders.Delivered - wallet.Dropshipping.CountGanancias)
	rec.PendingChargeCount = clampNonNegative(orders.Returned - wallet.Dropshipping.CountDevoluciones)

	rec.ProjectedImpact = float64(rec.PendingPayoutCount)*rec.AvgProfit -
		float64(rec.PendingChargeCount)*rec.AvgReturnCost

	return rec
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
