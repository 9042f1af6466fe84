// Package oauthcb sobe um servidor local efêmero que recebe o redirect do
// OAuth do Meta, troca o código com o backend e entrega o resultado para o
// fluxo que iniciou a autorização. O servidor se desliga sozinho pouco
// depois de atender o callback.
package oauthcb

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"

	"github.com/lucidanalytics/lucid-analytics-client/internal/config"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/middleware"
)

const (
	// Tipos de resultado entregues ao fluxo que abriu a autorização
	MetaAuthSuccess = "META_AUTH_SUCCESS"
	MetaAuthError   = "META_AUTH_ERROR"

	// Tempo entre responder o navegador e desligar o servidor
	shutdownDelay = 2 * time.Second
)

// AuthResult é o desfecho de uma tentativa de autorização
type AuthResult struct {
	Type   string
	Detail string
}

// CodeExchanger troca o código de autorização com o backend
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code string) error
}

type Server struct {
	httpServer *http.Server
	exchanger  CodeExchanger
	results    chan AuthResult
	done       chan struct{}
	doneOnce   sync.Once
}

func New(cfg config.OAuthCb, exchanger CodeExchanger) *Server {
	s := &Server{
		exchanger: exchanger,
		results:   make(chan AuthResult, 1),
		done:      make(chan struct{}),
	}

	rt := httprouter.New()
	rt.Handler(http.MethodGet, "/auth/meta/callback", http.HandlerFunc(s.handleCallback))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:           alice.New(middlewares...).Then(rt),
		ReadHeaderTimeout: 2 * time.Second,
	}

	return s
}

// Run sobe o servidor e bloqueia até o callback ser atendido ou o contexto
// ser cancelado
func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor de callback OAuth iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor de callback")
		}
	}()

	select {
	case <-s.done:
	case <-ctx.Done():
		log.L.Info("Contexto cancelado antes do callback OAuth")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor de callback")
		return err
	}

	log.L.Info("Servidor de callback OAuth desligado")
	return nil
}

// Results entrega o desfecho da autorização; o canal tem capacidade 1
func (s *Server) Results() <-chan AuthResult {
	return s.results
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var result AuthResult

	switch {
	case query.Get("error") != "":
		result = AuthResult{Type: MetaAuthError, Detail: query.Get("error_description")}
		if result.Detail == "" {
			result.Detail = query.Get("error")
		}
	case query.Get("code") == "":
		result = AuthResult{Type: MetaAuthError, Detail: "código de autorização ausente no redirect"}
	default:
		if err := s.exchanger.ExchangeCode(r.Context(), query.Get("code")); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao trocar código OAuth do Meta")
			result = AuthResult{Type: MetaAuthError, Detail: err.Error()}
		} else {
			result = AuthResult{Type: MetaAuthSuccess}
		}
	}

	s.writePage(w, result)

	select {
	case s.results <- result:
	default:
	}

	// O navegador recebe a página antes do servidor morrer
	go func() {
		time.Sleep(shutdownDelay)
		s.doneOnce.Do(func() { close(s.done) })
	}()
}

func (s *Server) writePage(w http.ResponseWriter, result AuthResult) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if result.Type == MetaAuthSuccess {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "<html><body><p>Conexión con Meta Ads completada. Puedes cerrar esta ventana.</p></body></html>")
		return
	}

	w.WriteHeader(http.StatusBadRequest)
	fmt.Fprintf(w, "<html><body><p>No se pudo conectar con Meta Ads: %s</p></body></html>", result.Detail)
}
