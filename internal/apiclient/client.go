// Package apiclient é o único ponto de contato com o backend do Lucid
// Analytics: injeta o bearer token, normaliza o formato de erro e trata
// o 401 como expiração de sessão (efeito colateral que os chamadores não
// devem tentar contornar com retry).
package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/lucidanalytics/lucid-analytics-client/pkg/apiErrors"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/log"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSessionExpired sinaliza que o backend devolveu 401: o token local já
// foi descartado e o chamador deve levar o usuário de volta ao login
var ErrSessionExpired = errors.New("Sesión expirada")

// TokenStore é o que o cliente precisa do armazenamento local de sessão
type TokenStore interface {
	Token() string
	ClearToken() error
}

// Response carrega o corpo JSON bruto e o status de uma chamada bem-sucedida
type Response struct {
	Data   []byte
	Status int
}

// DecodeTo desserializa o corpo da resposta no destino informado
func (r *Response) DecodeTo(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return errors.Wrap(err, "apiclient: erro ao decodificar resposta")
	}
	return nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	// sessionExpiredHooks é o análogo da navegação forçada para /login;
	// cada registro é disparado, na ordem, em qualquer 401
	sessionExpiredHooks []func()
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// OnSessionExpired registra um efeito colateral disparado em qualquer 401.
// Registros se acumulam: a sessão e a interface reagem ao mesmo evento.
func (c *Client) OnSessionExpired(fn func()) {
	c.sessionExpiredHooks = append(c.sessionExpiredHooks, fn)
}

// Request executa uma chamada contra o backend. Sem retry, sem timeout
// próprio e sem serialização entre chamadas: cada uma é independente.
func (c *Client) Request(ctx context.Context, method, path string, body any) (*Response, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil && method != http.MethodGet {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "apiclient: erro ao serializar corpo da requisição")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: erro ao criar requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID, err := utils.GenerateID(); err == nil {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"method": method,
			"path":   path,
		}).Error("apiclient: falha de rede")
		return nil, errors.Wrap(err, "apiclient: falha de rede")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Sessão expirada: descartar o token e forçar a volta ao login
		if err := c.tokens.ClearToken(); err != nil {
			log.ForContext(ctx).WithError(err).Warn("apiclient: erro ao descartar token expirado")
		}
		for _, hook := range c.sessionExpiredHooks {
			hook()
		}
		return nil, ErrSessionExpired
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apiErrors.FromResponse(resp.StatusCode, respBody)
		log.ForContext(ctx).WithFields(log.Fields{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
			"error":       apiErr.Message,
		}).Warn("apiclient: backend devolveu erro")
		return nil, apiErr
	}

	return &Response{Data: respBody, Status: resp.StatusCode}, nil
}

// PostPublic executa uma chamada sem bearer token e sem o tratamento
// especial de 401. Login e registro usam este caminho: um 401 ali
// significa credenciais inválidas, não sessão expirada.
func (c *Client) PostPublic(ctx context.Context, path string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: erro ao serializar corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: erro ao criar requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: falha de rede")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient: erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrors.FromResponse(resp.StatusCode, respBody)
	}

	return &Response{Data: respBody, Status: resp.StatusCode}, nil
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}
