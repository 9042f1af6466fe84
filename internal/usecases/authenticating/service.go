// Package authenticating mantém a sessão do usuário: bootstrap a partir
// do token persistido, login, registro com código de convite e logout.
package authenticating

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/internal/localstore"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// State é o estado da sessão visto pelos route guards
type State int

const (
	// StateUnknown vale apenas entre o início do processo e o fim do bootstrap
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

type Service struct {
	api   *apiclient.Client
	store *localstore.Store

	mu        sync.RWMutex
	state     State
	user      *domain.User
	observers []func(State)

	bootstrapOnce sync.Once
}

func NewService(api *apiclient.Client, store *localstore.Store) *Service {
	s := &Service{
		api:   api,
		store: store,
		state: StateUnknown,
	}

	// Qualquer 401 em qualquer endpoint derruba a sessão localmente
	api.OnSessionExpired(func() {
		s.setSession(nil)
	})

	return s
}

// Subscribe registra um observador de mudança de estado (os guards dependem disso)
func (s *Service) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser devolve uma cópia do usuário em sessão, ou nil se anônimo
func (s *Service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Bootstrap resolve o estado inicial da sessão exatamente uma vez por
// execução: valida o token persistido contra /auth/me e descarta o token
// em qualquer falha
func (s *Service) Bootstrap(ctx context.Context) State {
	s.bootstrapOnce.Do(func() {
		token := s.store.Token()
		if token == "" {
			s.setSession(nil)
			return
		}

		// Token já vencido não precisa de round trip para ser descartado
		if tokenExpired(token) {
			log.ForContext(ctx).Info("authenticating: token persistido expirado, descartando")
			if err := s.store.ClearToken(); err != nil {
				log.ForContext(ctx).WithError(err).Warn("authenticating: erro ao descartar token")
			}
			s.setSession(nil)
			return
		}

		resp, err := s.api.Get(ctx, "/auth/me")
		if err != nil {
			log.ForContext(ctx).WithError(err).Info("authenticating: bootstrap falhou, sessão anônima")
			if !errors.Is(err, apiclient.ErrSessionExpired) {
				// No 401 o apiclient já limpou o token
				if clearErr := s.store.ClearToken(); clearErr != nil {
					log.ForContext(ctx).WithError(clearErr).Warn("authenticating: erro ao descartar token")
				}
			}
			s.setSession(nil)
			return
		}

		var user domain.User
		if err := resp.DecodeTo(&user); err != nil {
			log.ForContext(ctx).WithError(err).Error("authenticating: resposta inválida de /auth/me")
			s.setSession(nil)
			return
		}

		s.setSession(&user)
	})

	return s.State()
}

// Login autentica e persiste o token devolvido. Erros do backend chegam
// com a mensagem original (ex: credenciais inválidas).
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	resp, err := s.api.PostPublic(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, resp)
}

// Register cria a conta consumindo um código de convite. Código inválido,
// esgotado ou expirado chega como mensagem do backend, sem classificação local.
func (s *Service) Register(ctx context.Context, name, email, password, inviteCode string) (*domain.User, error) {
	resp, err := s.api.PostPublic(ctx, "/auth/register", map[string]string{
		"name":        name,
		"email":       email,
		"password":    password,
		"invite_code": inviteCode,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, resp)
}

// Logout encerra a sessão localmente, sem chamada de rede
func (s *Service) Logout() {
	if err := s.store.ClearToken(); err != nil {
		log.L.WithError(err).Warn("authenticating: erro ao descartar token no logout")
	}
	s.setSession(nil)
}

// UpdateUser aplica uma edição parcial de perfil sobre o usuário em
// sessão, sem revalidar contra o backend
func (s *Service) UpdateUser(patch domain.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	merged := s.user.Merge(patch)
	s.user = &merged
}

func (s *Service) openSession(ctx context.Context, resp *apiclient.Response) (*domain.User, error) {
	var payload loginResponse
	if err := resp.DecodeTo(&payload); err != nil {
		return nil, err
	}

	if err := s.store.SetToken(payload.AccessToken); err != nil {
		return nil, errors.Wrap(err, "authenticating: erro ao persistir token")
	}

	s.setSession(&payload.User)

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": payload.User.ID,
	}).Info("authenticating: sessão iniciada")

	return s.CurrentUser(), nil
}

func (s *Service) setSession(user *domain.User) {
	s.mu.Lock()
	s.user = user
	if user != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	state := s.state
	observers := make([]func(State), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}

// tokenExpired decodifica o claim exp sem validar a assinatura; a
// validação real é do backend. Token que não parseia fica a cargo do
// /auth/me decidir.
func tokenExpired(tokenString string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
