// Package chatting mantém a conversa com o assistente do painel. O envio é
// otimista: a mensagem do usuário entra no histórico local antes da resposta
// e nunca é removida, mesmo quando a chamada falha.
package chatting

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/domain"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
)

// sendErrorMessage é a entrada fixa anexada ao histórico quando o envio falha
const sendErrorMessage = "❌ Error al procesar tu mensaje. Intenta de nuevo."

// ErrEmptyMessage barra o envio de mensagens em branco
var ErrEmptyMessage = errors.New("chatting: mensagem vazia")

// Confirmer decide se a limpeza do histórico prossegue
type Confirmer interface {
	Confirm(prompt string) bool
}

// ErrCancelled indica que o operador recusou a confirmação
var ErrCancelled = errors.New("chatting: operação cancelada pelo operador")

type apiCaller interface {
	Get(ctx context.Context, path string) (*apiclient.Response, error)
	Post(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Delete(ctx context.Context, path string) (*apiclient.Response, error)
}

type Service struct {
	api     apiCaller
	confirm Confirmer
	limit   int

	mu       sync.Mutex
	messages []domain.ChatMessage
	sending  bool
}

func NewService(api apiCaller, confirm Confirmer, historyLimit int) *Service {
	return &Service{api: api, confirm: confirm, limit: historyLimit}
}

// LoadHistory busca as últimas mensagens do servidor e substitui o
// histórico local
func (s *Service) LoadHistory(ctx context.Context) error {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/chat/history?limit=%d", s.limit))
	if err != nil {
		return errors.Wrap(err, "chatting: erro ao carregar histórico")
	}

	var payload struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		return err
	}

	s.mu.Lock()
	s.messages = payload.Messages
	s.mu.Unlock()

	return nil
}

// Send anexa a mensagem do usuário ao histórico local (eco otimista) e então
// envia ao backend. Em caso de falha, o eco permanece e uma entrada de erro
// do assistente é anexada; o erro original também é devolvido.
func (s *Service) Send(ctx context.Context, text string) error {
	if text == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return errors.New("chatting: envio em andamento")
	}
	s.sending = true
	s.messages = append(s.messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: text})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sending = false
		s.mu.Unlock()
	}()

	resp, err := s.api.Post(ctx, "/chat/message", map[string]string{"message": text})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("chatting: erro ao enviar mensagem")

		s.appendAssistant(sendErrorMessage)
		return errors.Wrap(err, "chatting: erro ao enviar mensagem")
	}

	var payload struct {
		Response string `json:"response"`
	}
	if err := resp.DecodeTo(&payload); err != nil {
		s.appendAssistant(sendErrorMessage)
		return err
	}

	s.appendAssistant(payload.Response)
	return nil
}

// Clear apaga o histórico no servidor e localmente, após confirmação
func (s *Service) Clear(ctx context.Context) error {
	if !s.confirm.Confirm("¿Borrar todo el historial del chat?") {
		return ErrCancelled
	}

	if _, err := s.api.Delete(ctx, "/chat/history"); err != nil {
		return errors.Wrap(err, "chatting: erro ao limpar histórico")
	}

	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()

	return nil
}

// Messages devolve uma cópia do histórico local
func (s *Service) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Sending indica se há um envio em andamento
func (s *Service) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

func (s *Service) appendAssistant(content string) {
	s.mu.Lock()
	s.messages = append(s.messages, domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: content})
	s.mu.Unlock()
}
