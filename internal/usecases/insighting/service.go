// Package insighting transforma os dados crus do backend (métricas por
// anúncio, pedidos do fulfillment, carteira) nos view models filtrados,
// classificados e projetados do dashboard. Tudo é derivado em memória a
// cada mudança de filtro; não há cache além do snapshot corrente.
package insighting

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

// View é o snapshot cru de um carregamento do dashboard. Orders e Wallet
// podem ficar nil quando o Dropi não está conectado; o erro fica em
// PartialErrors em vez de derrubar a visão inteira.
type View struct {
	AccountID string
	Range     utils.DateRange

	Dashboard *domain.DashboardResponse
	Orders    *domain.OrderSummary
	Wallet    *domain.WalletHistory

	PartialErrors map[string]string
}

// Derived é o view model re-derivado do snapshot para a seleção atual de filtros
type Derived struct {
	Ads        []domain.AdMetricRow
	Summary    domain.DashboardSummary
	BandCounts map[Band]int

	Bars []BarPoint
	Pie  []PiePoint

	Reconciliation WalletReconciliation
}

type Service struct {
	fetcher Fetcher

	// seq numera os carregamentos; respostas de um carregamento antigo
	// são descartadas em vez de sobrescrever estado mais novo
	seq atomic.Uint64

	mu      sync.RWMutex
	current *View
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Current devolve o último snapshot completo aplicado
func (s *Service) Current() *View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Load busca as três fontes do período em paralelo. As chamadas correm
// de forma independente; cada uma atualiza seu pedaço do snapshot quando
// resolve. Falha nas fontes do Dropi vira erro parcial (conta pode não
// estar conectada); falha na fonte principal é erro do carregamento.
func (s *Service) Load(ctx context.Context, accountID string, dateRange utils.DateRange) (*View, error) {
	seq := s.seq.Add(1)

	view := &View{
		AccountID:     accountID,
		Range:         dateRange,
		PartialErrors: make(map[string]string),
	}

	var (
		mu           sync.Mutex
		dashboardErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		dashboard, err := s.fetcher.FetchDashboard(ctx, accountID, dateRange)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			dashboardErr = err
			return
		}
		view.Dashboard = dashboard
	}()

	go func() {
		defer wg.Done()
		orders, err := s.fetcher.FetchOrderSummary(ctx, dateRange)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			view.PartialErrors["dropi_summary"] = err.Error()
			return
		}
		view.Orders = orders
	}()

	go func() {
		defer wg.Done()
		wallet, err := s.fetcher.FetchWalletHistory(ctx, dateRange)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			view.PartialErrors["wallet_history"] = err.Error()
			return
		}
		view.Wallet = wallet
	}()

	wg.Wait()

	if dashboardErr != nil {
		return nil, dashboardErr
	}

	s.apply(seq, view)

	return view, nil
}

// apply instala o snapshot somente se nenhum carregamento mais novo
// começou enquanto este resolvia
func (s *Service) apply(seq uint64, view *View) {
	if seq != s.seq.Load() {
		log.L.WithFields(log.Fields{
			"stale_seq":  seq,
			"latest_seq": s.seq.Load(),
		}).Debug("insighting: descartando resposta de carregamento antigo")
		return
	}

	s.mu.Lock()
	s.current = view
	s.mu.Unlock()
}

// Derive recalcula o view model para a seleção atual de filtros.
// Puro sobre o snapshot: a lista crua nunca é mutada.
func (v *View) Derive(campaigns Selection, bands Selection) Derived {
	var ads []domain.AdMetricRow
	var server *domain.DashboardSummary
	if v.Dashboard != nil {
		ads = v.Dashboard.Ads
		server = v.Dashboard.Summary
	}

	filtered := FilterAds(ads, campaigns, bands)

	bandCounts := make(map[Band]int, len(AllBands))
	for _, ad := range ads {
		bandCounts[ClassifyCPA(ad.CPA)]++
	}

	return Derived{
		Ads:            filtered,
		Summary:        Summarize(filtered, campaigns, bands, server),
		BandCounts:     bandCounts,
		Bars:           PrepareBarSeries(filtered),
		Pie:            PreparePieSeries(filtered),
		Reconciliation: ReconcileWallet(v.Orders, v.Wallet),
	}
}

// Project roda o projetor de utilidade sobre o snapshot corrente.
// O pendente é semeado com os pedidos "en ruta" quando não informado.
func (v *View) Project(input ProjectionInput) Projection {
	if input.Pending == 0 && v.Orders != nil {
		input.Pending = v.Orders.EnRuta
	}

	var ads []domain.AdMetricRow
	if v.Dashboard != nil {
		ads = v.Dashboard.Ads
	}

	return ProjectProfit(input, ads, v.Orders, ReconcileWallet(v.Orders, v.Wallet))
}

// apiFetcher implementa Fetcher por cima do cliente HTTP
type apiFetcher struct {
	api *apiclient.Client
}

func NewFetcher(api *apiclient.Client) Fetcher {
	return &apiFetcher{api: api}
}

func (f *apiFetcher) FetchDashboard(ctx context.Context, accountID string, dateRange utils.DateRange) (*domain.DashboardResponse, error) {
	path := fmt.Sprintf(
		"/analytics/dashboard?account_id=%s&start_date=%s&end_date=%s",
		url.QueryEscape(accountID),
		dateRange.StartString(),
		dateRange.EndString(),
	)

	resp, err := f.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var dashboard domain.DashboardResponse
	if err := resp.DecodeTo(&dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (f *apiFetcher) FetchOrderSummary(ctx context.Context, dateRange utils.DateRange) (*domain.OrderSummary, error) {
	path := fmt.Sprintf(
		"/dropi/summary?start_date=%s&end_date=%s",
		dateRange.StartString(),
		dateRange.EndString(),
	)

	resp, err := f.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var summary domain.OrderSummary
	if err := resp.DecodeTo(&summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (f *apiFetcher) FetchWalletHistory(ctx context.Context, dateRange utils.DateRange) (*domain.WalletHistory, error) {
	path := fmt.Sprintf(
		"/dropi/wallet/history?start_date=%s&end_date=%s",
		dateRange.StartString(),
		dateRange.EndString(),
	)

	resp, err := f.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var history domain.WalletHistory
	if err := resp.DecodeTo(&history); err != nil {
		return nil, err
	}

	return &history, nil
}

func (f *apiFetcher) ListAdAccounts(ctx context.Context) ([]domain.AdAccount, error) {
	resp, err := f.api.Get(ctx, "/meta/accounts")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Accounts []map[string]any `json:"accounts"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return nil, err
	}

	return domain.NormalizeAdAccounts(payload.Accounts)
}
