// Package adminpanel reúne as operações administrativas: códigos de convite,
// gestão de usuários e os gatilhos de sincronização do LucidBot. A
// confirmação das ações destrutivas é responsabilidade de quem chama, via
// Confirmer, para manter o serviço testável.
package adminpanel

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// Confirmer decide se uma ação destrutiva prossegue. A implementação típica
// pergunta ao operador no terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ErrCancelled indica que o operador recusou a confirmação
var ErrCancelled = errors.New("adminpanel: operação cancelada pelo operador")

// ErrSelfToggle impede o admin de desativar a própria conta
var ErrSelfToggle = errors.New("adminpanel: o próprio admin não pode ser alternado")

type apiCaller interface {
	Get(ctx context.Context, path string) (*apiclient.Response, error)
	Post(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Put(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Delete(ctx context.Context, path string) (*apiclient.Response, error)
}

type Service struct {
	api     apiCaller
	confirm Confirmer
}

func NewService(api apiCaller, confirm Confirmer) *Service {
	return &Service{api: api, confirm: confirm}
}

// ListInviteCodes busca os códigos de convite existentes
func (s *Service) ListInviteCodes(ctx context.Context) ([]domain.InviteCode, error) {
	resp, err := s.api.Get(ctx, "/admin/invite-codes")
	if err != nil {
		return nil, errors.Wrap(err, "adminpanel: erro ao listar códigos de convite")
	}

	var payload struct {
		Codes []domain.InviteCode `json:"codes"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return nil, err
	}

	return payload.Codes, nil
}

// CreateInviteCode gera um novo código e devolve a string para exibição
func (s *Service) CreateInviteCode(ctx context.Context, maxUses, expiresInDays int) (string, error) {
	body := map[string]int{
		"max_uses":        maxUses,
		"expires_in_days": expiresInDays,
	}

	resp, err := s.api.Post(ctx, "/admin/invite-codes", body)
	if err != nil {
		return "", errors.Wrap(err, "adminpanel: erro ao criar código de convite")
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return "", err
	}

	log.ForContext(ctx).WithField("code", payload.Code).Info("Código de convite criado")
	return payload.Code, nil
}

// DeleteInviteCode remove um código após confirmação do operador
func (s *Service) DeleteInviteCode(ctx context.Context, codeID int) error {
	if !s.confirm.Confirm("¿Eliminar este código?") {
		return ErrCancelled
	}

	if _, err := s.api.Delete(ctx, fmt.Sprintf("/admin/invite-codes/%d", codeID)); err != nil {
		return errors.Wrap(err, "adminpanel: erro ao excluir código de convite")
	}

	return nil
}

// ListUsers busca os usuários cadastrados
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := s.api.Get(ctx, "/admin/users")
	if err != nil {
		return nil, errors.Wrap(err, "adminpanel: erro ao listar usuários")
	}

	var payload struct {
		Users []domain.User `json:"users"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return nil, err
	}

	return payload.Users, nil
}

// ToggleUserActive inverte o is_active de um usuário. O admin em sessão não
// pode alternar a si mesmo.
func (s *Service) ToggleUserActive(ctx context.Context, user domain.User, currentUserID int) error {
	if user.ID == currentUserID && user.IsAdmin {
		return ErrSelfToggle
	}

	body := map[string]bool{"is_active": !user.IsActive}

	if _, err := s.api.Put(ctx, fmt.Sprintf("/admin/users/%d", user.ID), body); err != nil {
		return errors.Wrap(err, "adminpanel: erro ao alternar status do usuário")
	}

	return nil
}

// SetUserToken vincula uma sessão do LucidBot a um usuário e devolve a
// contagem de contatos reportada para feedback do operador
func (s *Service) SetUserToken(ctx context.Context, userID int, jwtToken, pageID string) (int, error) {
	body := map[string]any{
		"user_id":   userID,
		"jwt_token": jwtToken,
		"page_id":   pageID,
	}

	resp, err := s.api.Post(ctx, "/admin/lucidbot/set-token", body)
	if err != nil {
		return 0, errors.Wrap(err, "adminpanel: erro ao configurar token do usuário")
	}

	var payload struct {
		Message       string `json:"message"`
		TotalContacts int    `json:"total_contacts_in_lucidbot"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return 0, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"contacts": payload.TotalContacts,
	}).Info("Token do LucidBot configurado")

	return payload.TotalContacts, nil
}

// SyncUser dispara a sincronização de contatos de um usuário. O backend só
// confirma o início do job; o progresso não é acompanhado.
func (s *Service) SyncUser(ctx context.Context, userID int) error {
	body := map[string]int{"user_id": userID}

	if _, err := s.api.Post(ctx, "/admin/lucidbot/sync-user", body); err != nil {
		return errors.Wrap(err, "adminpanel: erro ao iniciar sincronização do usuário")
	}

	return nil
}

// SyncAll dispara a sincronização de todos os usuários com conexão ativa
func (s *Service) SyncAll(ctx context.Context) error {
	if _, err := s.api.Post(ctx, "/admin/sync-all", nil); err != nil {
		return errors.Wrap(err, "adminpanel: erro ao iniciar sincronização geral")
	}

	return nil
}

// ClearContacts apaga todos os contatos de um usuário. Irreversível; exige
// confirmação do operador.
func (s *Service) ClearContacts(ctx context.Context, userID int) error {
	if !s.confirm.Confirm("¿Eliminar todos los contactos de este usuario? Esta acción es irreversible.") {
		return ErrCancelled
	}

	if _, err := s.api.Delete(ctx, fmt.Sprintf("/admin/lucidbot/clear-contacts/%d", userID)); err != nil {
		return errors.Wrap(err, "adminpanel: erro ao limpar contatos do usuário")
	}

	return nil
}
