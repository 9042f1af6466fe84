// Package theming persiste a preferência de tema do painel. O padrão é o
// tema escuro.
package theming

import (
	"sync"

	"github.com/pkg/errors"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// themeStore é o recorte do armazenamento local que o tema precisa
type themeStore interface {
	Theme() string
	SetTheme(theme string) error
}

type Service struct {
	store themeStore

	mu      sync.Mutex
	current string
}

func NewService(store themeStore) *Service {
	current := store.Theme()
	if current != ThemeLight {
		current = ThemeDark
	}

	return &Service{store: store, current: current}
}

func (s *Service) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) IsDark() bool {
	return s.Current() == ThemeDark
}

// Toggle alterna entre claro e escuro e persiste a escolha
func (s *Service) Toggle() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ThemeDark
	if s.current == ThemeDark {
		next = ThemeLight
	}

	if err := s.store.SetTheme(next); err != nil {
		return s.current, errors.Wrap(err, "theming: erro ao persistir tema")
	}

	s.current = next
	return next, nil
}

// Set grava um tema explícito; valores desconhecidos caem no escuro
func (s *Service) Set(theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SetTheme(theme); err != nil {
		return errors.Wrap(err, "theming: erro ao persistir tema")
	}

	s.current = theme
	return nil
}
