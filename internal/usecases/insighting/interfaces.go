package insighting

import (
	"context"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

// Fetcher define as buscas de dados crus que alimentam o dashboard
type Fetcher interface {
	// FetchDashboard obtém as métricas por anúncio e o summary do período
	FetchDashboard(ctx context.Context, accountID string, dateRange utils.DateRange) (*domain.DashboardResponse, error)

	// FetchOrderSummary obtém o agregado de pedidos do fulfillment
	FetchOrderSummary(ctx context.Context, dateRange utils.DateRange) (*domain.OrderSummary, error)

	// FetchWalletHistory obtém o fluxo de caixa da carteira
	FetchWalletHistory(ctx context.Context, dateRange utils.DateRange) (*domain.WalletHistory, error)

	// ListAdAccounts lista as contas publicitárias conectadas
	ListAdAccounts(ctx context.Context) ([]domain.AdAccount, error)
}
