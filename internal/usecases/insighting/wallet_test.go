package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

func TestReconcileWallet(t *testing.T) {
	tests := []struct {
		name     string
		orders   *domain.OrderSummary
		wallet   *domain.WalletHistory
		validate func(t *testing.T, rec WalletReconciliation)
	}{
		{
			name:   "Carteira adiantada não gera contagens negativas",
			orders: &domain.OrderSummary{Delivered: 10, Returned: 1, DeliveredProfit: 150000},
			wallet: &domain.WalletHistory{
				Dropshipping: domain.WalletDropshipping{
					CountGanancias:     12,
					CountDevoluciones:  3,
					PromedioDevolucion: 18000,
				},
			},
			validate: func(t *testing.T, rec WalletReconciliation) {
				assert.Equal(t, 0, rec.PendingPayoutCount)
				assert.Equal(t, 0, rec.PendingChargeCount)
				assert.Equal(t, 0.0, rec.ProjectedImpact)
			},
		},
		{
			name:   "Ledger atrasado projeta o impacto dos lançamentos pendentes",
			orders: &domain.OrderSummary{Delivered: 10, Returned: 4, DeliveredProfit: 200000},
			wallet: &domain.WalletHistory{
				Dropshipping: domain.WalletDropshipping{
					CountGanancias:     6,
					CountDevoluciones:  1,
					PromedioDevolucion: 15000,
				},
			},
			validate: func(t *testing.T, rec WalletReconciliation) {
				assert.Equal(t, 20000.0, rec.AvgProfit)
				assert.Equal(t, 15000.0, rec.AvgReturnCost)
				assert.Equal(t, 4, rec.PendingPayoutCount)
				assert.Equal(t, 3, rec.PendingChargeCount)
				// 4*20000 - 3*15000
				assert.Equal(t, 35000.0, rec.ProjectedImpact)
			},
		},
		{
			name:   "Sem devoluções na carteira vale o custo padrão de devolução",
			orders: &domain.OrderSummary{Delivered: 5, Returned: 2, DeliveredProfit: 100000},
			wallet: &domain.WalletHistory{},
			validate: func(t *testing.T, rec WalletReconciliation) {
				assert.Equal(t, DefaultReturnCost, rec.AvgReturnCost)
				assert.Equal(t, 2, rec.PendingChargeCount)
			},
		},
		{
			name:   "Entradas nulas produzem reconciliação zerada com custo padrão",
			orders: nil,
			wallet: nil,
			validate: func(t *testing.T, rec WalletReconciliation) {
				assert.Equal(t, 0.0, rec.AvgProfit)
				assert.Equal(t, DefaultReturnCost, rec.AvgReturnCost)
				assert.Equal(t, 0, rec.PendingPayoutCount)
				assert.Equal(t, 0, rec.PendingChargeCount)
				assert.Equal(t, 0.0, rec.ProjectedImpact)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ReconcileWallet(tt.orders, tt.wallet))
		})
	}
}
