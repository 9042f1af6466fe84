package connecting

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// DropiCredentials são enviadas como estão para o backend; nenhuma validação
// local além de campos não vazios
type DropiCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

// DropiManager conecta a plataforma de fulfillment com e-mail, senha e país
type DropiManager struct {
	api apiCaller

	mu      sync.Mutex
	loading bool
	status  domain.DropiStatus
}

func NewDropiManager(api apiCaller) *DropiManager {
	return &DropiManager{api: api}
}

func (m *DropiManager) Connect(ctx context.Context, creds DropiCredentials) error {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" || strings.TrimSpace(creds.Country) == "" {
		return errors.New("connecting: credenciais do Dropi incompletas")
	}

	m.setLoading(true)
	defer m.setLoading(false)

	if _, err := m.api.Post(ctx, "/dropi/connect", creds); err != nil {
		return errors.Wrap(err, "connecting: erro ao conectar Dropi")
	}

	m.RefreshStatus(ctx)
	return nil
}

func (m *DropiManager) Disconnect(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if _, err := m.api.Delete(ctx, "/dropi/disconnect"); err != nil {
		return errors.Wrap(err, "connecting: erro ao desconectar Dropi")
	}

	m.mu.Lock()
	m.status = domain.DropiStatus{}
	m.mu.Unlock()

	return nil
}

// RefreshStatus sonda o backend. Erro na sondagem vira "não conectado".
func (m *DropiManager) RefreshStatus(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Get(ctx, "/dropi/status")
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("connecting: Dropi não conectado")

		m.mu.Lock()
		m.status = domain.DropiStatus{}
		m.mu.Unlock()
		return
	}

	var status domain.DropiStatus
	if err := resp.DecodeTo(&status); err != nil {
		log.ForContext(ctx).WithError(err).Warn("connecting: resposta de status do Dropi inválida")
		return
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *DropiManager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status.Connected
}

func (m *DropiManager) Status() domain.DropiStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *DropiManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *DropiManager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
