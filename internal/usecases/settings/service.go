// Package settings cobre a edição de perfil, a troca de senha e a gestão da
// chave de API do assistente. As alterações de perfil confirmadas pelo
// backend são refletidas na sessão local sem revalidação.
package settings

import (
	"context"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
)

const passwordMinLength = 8

var (
	ErrPasswordMismatch = errors.New("Las contraseñas no coinciden")
	ErrPasswordTooShort = errors.New("La nueva contraseña debe tener al menos 8 caracteres")
)

type apiCaller interface {
	Get(ctx context.Context, path string) (*apiclient.Response, error)
	Post(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Put(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Delete(ctx context.Context, path string) (*apiclient.Response, error)
}

// SessionUpdater aplica a edição de perfil sobre o usuário em sessão
type SessionUpdater interface {
	UpdateUser(patch domain.UserPatch)
}

// AnthropicKeyStatus descreve a chave de API cadastrada, sem expor o valor
type AnthropicKeyStatus struct {
	HasKey    bool   `json:"has_key"`
	MaskedKey string `json:"masked_key"`
}

type Service struct {
	api     apiCaller
	session SessionUpdater
}

func NewService(api apiCaller, session SessionUpdater) *Service {
	return &Service{api: api, session: session}
}

// UpdateProfile envia nome e e-mail ao backend e espelha a resposta na sessão
func (s *Service) UpdateProfile(ctx context.Context, name, email string) (*domain.User, error) {
	body := map[string]string{"name": name, "email": email}

	resp, err := s.api.Put(ctx, "/auth/profile", body)
	if err != nil {
		return nil, errors.Wrap(err, "settings: erro ao atualizar perfil")
	}

	var user domain.User
	if err := resp.DecodeTo(&user); err != nil {
		return nil, err
	}

	s.session.UpdateUser(domain.UserPatch{Name: &user.Name, Email: &user.Email})

	return &user, nil
}

// ChangePassword valida localmente o mínimo (tamanho e confirmação) e delega
// o resto ao backend
func (s *Service) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < passwordMinLength {
		return ErrPasswordTooShort
	}

	body := map[string]string{
		"current_password": current,
		"new_password":     newPassword,
	}

	if _, err := s.api.Put(ctx, "/auth/password", body); err != nil {
		return errors.Wrap(err, "settings: erro ao trocar senha")
	}

	return nil
}

// AnthropicKey consulta o status da chave cadastrada
func (s *Service) AnthropicKey(ctx context.Context) (*AnthropicKeyStatus, error) {
	resp, err := s.api.Get(ctx, "/auth/anthropic-key")
	if err != nil {
		return nil, errors.Wrap(err, "settings: erro ao consultar chave de API")
	}

	var status AnthropicKeyStatus
	if err := resp.DecodeTo(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

// SetAnthropicKey cadastra ou substitui a chave de API do assistente
func (s *Service) SetAnthropicKey(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return errors.New("settings: chave de API vazia")
	}

	body := map[string]string{"api_key": apiKey}
	if _, err := s.api.Post(ctx, "/auth/anthropic-key", body); err != nil {
		return errors.Wrap(err, "settings: erro ao cadastrar chave de API")
	}

	return nil
}

// DeleteAnthropicKey remove a chave cadastrada
func (s *Service) DeleteAnthropicKey(ctx context.Context) error {
	if _, err := s.api.Delete(ctx, "/auth/anthropic-key"); err != nil {
		return errors.Wrap(err, "settings: erro ao remover chave de API")
	}

	return nil
}
