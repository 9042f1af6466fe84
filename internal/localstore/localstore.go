// Package localstore persiste o único estado do cliente que sobrevive
// entre execuções: o token de sessão e a preferência de tema. Nada além
// disso é guardado localmente; todos os dados de negócio são re-buscados
// do backend a cada visualização.
package localstore

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type state struct {
	Token string `json:"token,omitempty"`
	Theme string `json:"theme,omitempty"`
}

type Store struct {
	mu    sync.Mutex
	path  string
	state state
}

func New(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "localstore: erro ao ler arquivo de estado")
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		// Arquivo corrompido equivale a estado vazio: o usuário só precisa logar de novo
		s.state = state{}
	}

	return s, nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.flush()
}

func (s *Store) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	return s.flush()
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	return s.flush()
}

// flush grava o estado de forma atômica; o token é uma credencial,
// então o arquivo fica com permissão restrita ao usuário
func (s *Store) flush() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return errors.Wrap(err, "localstore: erro ao serializar estado")
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "localstore: erro ao criar diretório de estado")
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "localstore: erro ao gravar estado")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "localstore: erro ao renomear arquivo de estado")
	}

	return nil
}
