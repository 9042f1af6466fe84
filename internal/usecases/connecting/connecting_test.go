package connecting

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/config"
)

type fakeAPI struct {
	getResponses map[string]string
	getErr       error
	postErr      error

	lastPostPath string
	lastPostBody any
	deletedPaths []string
}

func (f *fakeAPI) Get(_ context.Context, path string) (*apiclient.Response, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.getResponses[path]
	if !ok {
		return nil, errors.New("rota inesperada: " + path)
	}
	return &apiclient.Response{Data: []byte(body), Status: 200}, nil
}

func (f *fakeAPI) Post(_ context.Context, path string, body any) (*apiclient.Response, error) {
	f.lastPostPath = path
	f.lastPostBody = body
	if f.postErr != nil {
		return nil, f.postErr
	}
	return &apiclient.Response{Data: []byte(`{}`), Status: 200}, nil
}

func (f *fakeAPI) Delete(_ context.Context, path string) (*apiclient.Response, error) {
	f.deletedPaths = append(f.deletedPaths, path)
	return &apiclient.Response{Data: []byte(`{}`), Status: 200}, nil
}

func metaConfig() config.Meta {
	return config.Meta{
		AppID:       "1234567890",
		DialogURL:   "https://www.facebook.com/v18.0/dialog/oauth",
		Scopes:      "ads_read,ads_management,business_management",
		RedirectURI: "http://localhost:4327/auth/meta/callback",
	}
}

func TestMetaAuthorizeURL(t *testing.T) {
	manager := NewMetaManager(&fakeAPI{}, metaConfig())

	parsed, err := url.Parse(manager.AuthorizeURL())
	require.NoError(t, err)

	assert.Equal(t, "www.facebook.com", parsed.Host)
	assert.Equal(t, "/v18.0/dialog/oauth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "1234567890", query.Get("client_id"))
	assert.Equal(t, "ads_read,ads_management,business_management", query.Get("scope"))
	assert.Equal(t, "http://localhost:4327/auth/meta/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
}

func TestMetaExchangeCode(t *testing.T) {
	api := &fakeAPI{}
	manager := NewMetaManager(api, metaConfig())

	require.NoError(t, manager.ExchangeCode(context.Background(), "codigo-abc"))

	assert.Equal(t, "/meta/oauth/callback", api.lastPostPath)
	assert.Equal(t, map[string]string{
		"code":         "codigo-abc",
		"redirect_uri": "http://localhost:4327/auth/meta/callback",
	}, api.lastPostBody)
	assert.True(t, manager.Connected())
}

func TestMetaExchangeCodeVazio(t *testing.T) {
	manager := NewMetaManager(&fakeAPI{}, metaConfig())

	assert.Error(t, manager.ExchangeCode(context.Background(), ""))
	assert.False(t, manager.Connected())
}

func TestMetaAccountsNormalizaOsDoisFormatos(t *testing.T) {
	api := &fakeAPI{getResponses: map[string]string{
		"/meta/accounts": `{"accounts": [
			{"account_id": "act_1", "account_name": "Trucos Ecomm"},
			{"id": "act_2", "name": "Trucos Drop"}
		]}`,
	}}
	manager := NewMetaManager(api, metaConfig())

	accounts, err := manager.Accounts(context.Background())
	require.NoError(t, err)

	require.Len(t, accounts, 2)
	assert.Equal(t, "act_1", accounts[0].AccountID)
	assert.Equal(t, "Trucos Ecomm", accounts[0].AccountName)
	assert.Equal(t, "act_2", accounts[1].AccountID)
	assert.Equal(t, "Trucos Drop", accounts[1].AccountName)

	assert.True(t, manager.Connected())
}

func TestMetaRefreshStatusComFalhaVivaNaoConectado(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("backend fora do ar")}
	manager := NewMetaManager(api, metaConfig())

	// Sondagem com falha é caminho esperado: vira "não conectado"
	manager.RefreshStatus(context.Background())

	assert.False(t, manager.Connected())
	assert.Empty(t, manager.CachedAccounts())
}

func TestLucidBotConnect(t *testing.T) {
	api := &fakeAPI{getResponses: map[string]string{
		"/lucidbot/status": `{"connected": true, "page_id": "page-9"}`,
	}}
	manager := NewLucidBotManager(api)

	require.NoError(t, manager.Connect(context.Background(), "token-do-bot"))

	assert.Equal(t, "/lucidbot/connect", api.lastPostPath)
	assert.Equal(t, map[string]string{"api_token": "token-do-bot"}, api.lastPostBody)
	assert.True(t, manager.Connected())
	assert.Equal(t, "page-9", manager.Status().PageID)
}

func TestLucidBotConnectTokenVazio(t *testing.T) {
	api := &fakeAPI{}
	manager := NewLucidBotManager(api)

	assert.Error(t, manager.Connect(context.Background(), "   "))
	assert.Empty(t, api.lastPostPath)
}

func TestLucidBotDisconnect(t *testing.T) {
	api := &fakeAPI{getResponses: map[string]string{
		"/lucidbot/status": `{"connected": true}`,
	}}
	manager := NewLucidBotManager(api)
	manager.RefreshStatus(context.Background())
	require.True(t, manager.Connected())

	require.NoError(t, manager.Disconnect(context.Background()))

	assert.Equal(t, []string{"/lucidbot/disconnect"}, api.deletedPaths)
	assert.False(t, manager.Connected())
}

func TestDropiConnectValidaCredenciais(t *testing.T) {
	api := &fakeAPI{}
	manager := NewDropiManager(api)

	err := manager.Connect(context.Background(), DropiCredentials{Email: "a@b.co", Password: "", Country: "CO"})

	assert.Error(t, err)
	assert.Empty(t, api.lastPostPath)
}

func TestDropiConnect(t *testing.T) {
	api := &fakeAPI{getResponses: map[string]string{
		"/dropi/status": `{"connected": true, "dropi_user_name": "Trucos", "country": "CO"}`,
	}}
	manager := NewDropiManager(api)

	creds := DropiCredentials{Email: "a@b.co", Password: "secreta", Country: "CO"}
	require.NoError(t, manager.Connect(context.Background(), creds))

	assert.Equal(t, "/dropi/connect", api.lastPostPath)
	assert.Equal(t, creds, api.lastPostBody)
	assert.True(t, manager.Connected())
	assert.Equal(t, "Trucos", manager.Status().DropiUserName)
}

func TestPollOnceSondaAsTresIntegracoes(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("tudo fora do ar")}

	meta := NewMetaManager(api, metaConfig())
	lucidbot := NewLucidBotManager(api)
	dropi := NewDropiManager(api)

	poller := NewStatusPoller(meta, lucidbot, dropi, config.StatusPoll{})

	// Uma integração fora do ar não derruba a sondagem das outras
	poller.PollOnce(context.Background())

	assert.False(t, meta.Connected())
	assert.False(t, lucidbot.Connected())
	assert.False(t, dropi.Connected())
}

func TestPollerEnabledRefleteAConfiguracao(t *testing.T) {
	api := &fakeAPI{}
	meta := NewMetaManager(api, metaConfig())
	lucidbot := NewLucidBotManager(api)
	dropi := NewDropiManager(api)

	// Desabilitado por configuração: Start não agenda nada, e quem depende
	// da revalidação contínua precisa conseguir detectar isso antes
	disabled := NewStatusPoller(meta, lucidbot, dropi, config.StatusPoll{Enabled: false})
	assert.False(t, disabled.Enabled())
	require.NoError(t, disabled.Start(context.Background()))

	enabled := NewStatusPoller(meta, lucidbot, dropi, config.StatusPoll{Enabled: true, CronSchedule: "*/5 * * * *"})
	assert.True(t, enabled.Enabled())
}
