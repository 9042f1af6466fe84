// Package connecting gerencia o ciclo de vida das integrações externas
// (Meta Ads, LucidBot e Dropi). Cada gerenciador mantém seu próprio estado
// de conexão e de carregamento: uma integração em andamento nunca bloqueia
// as outras.
package connecting

import (
	"context"
	"net/url"
	"sync"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/config"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// MetaManager cuida da conexão com o Meta Ads via OAuth. A troca de token
// acontece no backend: o cliente só monta a URL de autorização e repassa o
// código recebido no redirect.
type MetaManager struct {
	api apiCaller
	cfg config.Meta

	mu        sync.Mutex
	loading   bool
	connected bool
	accounts  []domain.AdAccount
}

func NewMetaManager(api apiCaller, cfg config.Meta) *MetaManager {
	return &MetaManager{api: api, cfg: cfg}
}

// AuthorizeURL monta a URL do diálogo de OAuth do Facebook com os escopos
// fixos de leitura e gestão de anúncios
func (m *MetaManager) AuthorizeURL() string {
	params := url.Values{}
	params.Set("client_id", m.cfg.AppID)
	params.Set("redirect_uri", m.cfg.RedirectURI)
	params.Set("scope", m.cfg.Scopes)
	params.Set("response_type", "code")

	return m.cfg.DialogURL + "?" + params.Encode()
}

// ExchangeCode repassa o código de autorização para o backend concluir a
// troca de token do lado do servidor
func (m *MetaManager) ExchangeCode(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("connecting: código de autorização vazio")
	}

	m.setLoading(true)
	defer m.setLoading(false)

	body := map[string]string{
		"code":         code,
		"redirect_uri": m.cfg.RedirectURI,
	}

	if _, err := m.api.Post(ctx, "/meta/oauth/callback", body); err != nil {
		return errors.Wrap(err, "connecting: erro ao trocar código OAuth do Meta")
	}

	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()

	return nil
}

// Accounts busca as contas de anúncio vinculadas, normalizando os dois
// formatos de payload que o backend já devolveu (id/name e
// account_id/account_name)
func (m *MetaManager) Accounts(ctx context.Context) ([]domain.AdAccount, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Get(ctx, "/meta/accounts")
	if err != nil {
		return nil, errors.Wrap(err, "connecting: erro ao listar contas de anúncio")
	}

	var payload struct {
		Accounts []map[string]any `json:"accounts"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return nil, err
	}

	accounts, err := domain.NormalizeAdAccounts(payload.Accounts)
	if err != nil {
		return nil, errors.Wrap(err, "connecting: erro ao normalizar contas de anúncio")
	}

	m.mu.Lock()
	m.accounts = accounts
	m.connected = len(accounts) > 0
	m.mu.Unlock()

	return accounts, nil
}

// RefreshStatus sonda a conexão listando as contas. Falha na sondagem é um
// caminho esperado e significa "não conectado", nunca um erro fatal.
func (m *MetaManager) RefreshStatus(ctx context.Context) {
	if _, err := m.Accounts(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Debug("connecting: Meta Ads não conectado")

		m.mu.Lock()
		m.connected = false
		m.accounts = nil
		m.mu.Unlock()
	}
}

func (m *MetaManager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *MetaManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// CachedAccounts devolve a última lista de contas sondada, sem nova chamada
func (m *MetaManager) CachedAccounts() []domain.AdAccount {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.AdAccount, len(m.accounts))
	copy(out, m.accounts)
	return out
}

func (m *MetaManager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
