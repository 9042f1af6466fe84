package authenticating

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/internal/localstore"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return store
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)
	return token
}

func TestBootstrapSemToken(t *testing.T) {
	store := newTestStore(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("nenhuma chamada de rede esperada sem token persistido")
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	state := service.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, service.CurrentUser())
}

func TestBootstrapTokenExpiradoNaoVaiARede(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(-time.Hour))))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("token vencido deve ser descartado sem round trip")
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	state := service.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, store.Token())
}

func TestBootstrapTokenValido(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 7, "name": "Valentina", "email": "v@trucos.co", "is_admin": true, "is_active": true}`))
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	state := service.Bootstrap(context.Background())

	require.Equal(t, StateAuthenticated, state)
	user := service.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "Valentina", user.Name)
	assert.True(t, user.IsAdmin)
}

func TestBootstrapTokenRejeitadoPeloBackend(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	state := service.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, store.Token())
}

func TestBootstrapRodaUmaVezPorProcesso(t *testing.T) {
	store := newTestStore(t)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))

	service := NewService(apiclient.New(server.URL, store), store)

	service.Bootstrap(context.Background())
	service.Bootstrap(context.Background())

	assert.Equal(t, 1, calls)
}

func TestLogin(t *testing.T) {
	store := newTestStore(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"access_token": "token-nuevo",
			"user": {"id": 3, "name": "Camilo", "email": "c@trucos.co"}
		}`))
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	var notified []State
	service.Subscribe(func(s State) { notified = append(notified, s) })

	user, err := service.Login(context.Background(), "c@trucos.co", "secreta")
	require.NoError(t, err)

	assert.Equal(t, "Camilo", user.Name)
	assert.Equal(t, "token-nuevo", store.Token())
	assert.Equal(t, StateAuthenticated, service.State())
	assert.Equal(t, []State{StateAuthenticated}, notified)
}

func TestLoginCredenciaisInvalidas(t *testing.T) {
	store := newTestStore(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Credenciales inválidas"}`))
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	_, err := service.Login(context.Background(), "c@trucos.co", "errada")

	require.Error(t, err)
	assert.NotErrorIs(t, err, apiclient.ErrSessionExpired)
	assert.EqualError(t, err, "Credenciales inválidas")
	assert.Empty(t, store.Token())
}

func TestRegisterEnviaCodigoDeConvite(t *testing.T) {
	store := newTestStore(t)

	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)

		_, _ = w.Write([]byte(`{"access_token": "t", "user": {"id": 9, "name": "Nueva"}}`))
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	_, err := service.Register(context.Background(), "Nueva", "n@trucos.co", "secreta", "TRUCOS24")
	require.NoError(t, err)

	assert.Contains(t, gotBody, `"invite_code":"TRUCOS24"`)
}

func TestLogoutESincrono(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("algum-token"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("logout não faz chamada de rede")
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)
	service.Logout()

	assert.Empty(t, store.Token())
	assert.Equal(t, StateAnonymous, service.State())
	assert.Nil(t, service.CurrentUser())
}

func TestUpdateUserMesclaSemRevalidar(t *testing.T) {
	store := newTestStore(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"access_token": "t",
			"user": {"id": 3, "name": "Camilo", "email": "c@trucos.co"}
		}`))
	}))
	defer server.Close()

	service := NewService(apiclient.New(server.URL, store), store)

	_, err := service.Login(context.Background(), "c@trucos.co", "secreta")
	require.NoError(t, err)

	newName := "Camilo R."
	service.UpdateUser(domain.UserPatch{Name: &newName})

	user := service.CurrentUser()
	assert.Equal(t, "Camilo R.", user.Name)
	assert.Equal(t, "c@trucos.co", user.Email)
}
