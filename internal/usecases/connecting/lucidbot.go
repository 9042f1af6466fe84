package connecting

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// LucidBotManager conecta a plataforma de leads via token de API. Toda a
// validação de credencial é do servidor: aqui só barramos token vazio.
type LucidBotManager struct {
	api apiCaller

	mu      sync.Mutex
	loading bool
	status  domain.LucidBotStatus
}

func NewLucidBotManager(api apiCaller) *LucidBotManager {
	return &LucidBotManager{api: api}
}

func (m *LucidBotManager) Connect(ctx context.Context, apiToken string) error {
	if strings.TrimSpace(apiToken) == "" {
		return errors.New("connecting: token de API do LucidBot vazio")
	}

	m.setLoading(true)
	defer m.setLoading(false)

	body := map[string]string{"api_token": apiToken}
	if _, err := m.api.Post(ctx, "/lucidbot/connect", body); err != nil {
		return errors.Wrap(err, "connecting: erro ao conectar LucidBot")
	}

	m.RefreshStatus(ctx)
	return nil
}

func (m *LucidBotManager) Disconnect(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if _, err := m.api.Delete(ctx, "/lucidbot/disconnect"); err != nil {
		return errors.Wrap(err, "connecting: erro ao desconectar LucidBot")
	}

	m.mu.Lock()
	m.status = domain.LucidBotStatus{}
	m.mu.Unlock()

	return nil
}

// RefreshStatus sonda o backend. Erro na sondagem vira "não conectado".
func (m *LucidBotManager) RefreshStatus(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Get(ctx, "/lucidbot/status")
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("connecting: LucidBot não conectado")

		m.mu.Lock()
		m.status = domain.LucidBotStatus{}
		m.mu.Unlock()
		return
	}

	var status domain.LucidBotStatus
	if err := resp.DecodeTo(&status); err != nil {
		log.ForContext(ctx).WithError(err).Warn("connecting: resposta de status do LucidBot inválida")
		return
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *LucidBotManager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status.Connected
}

func (m *LucidBotManager) Status() domain.LucidBotStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *LucidBotManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *LucidBotManager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
