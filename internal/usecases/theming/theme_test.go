package theming

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	theme  string
	setErr error
	writes []string
}

func (f *fakeStore) Theme() string { return f.theme }

func (f *fakeStore) SetTheme(theme string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.writes = append(f.writes, theme)
	f.theme = theme
	return nil
}

func TestNewServicePadraoEscuro(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected string
	}{
		{name: "sem preferência gravada", stored: "", expected: ThemeDark},
		{name: "claro gravado", stored: ThemeLight, expected: ThemeLight},
		{name: "escuro gravado", stored: ThemeDark, expected: ThemeDark},
		{name: "valor desconhecido cai no escuro", stored: "solarized", expected: ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&fakeStore{theme: tt.stored})
			assert.Equal(t, tt.expected, service.Current())
		})
	}
}

func TestToggle(t *testing.T) {
	store := &fakeStore{theme: ThemeDark}
	service := NewService(store)

	next, err := service.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, next)
	assert.False(t, service.IsDark())

	next, err = service.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, next)
	assert.True(t, service.IsDark())

	// Cada alternância persistiu antes de virar o estado em memória
	assert.Equal(t, []string{ThemeLight, ThemeDark}, store.writes)
}

func TestToggleComFalhaDePersistenciaNaoViraOTema(t *testing.T) {
	store := &fakeStore{theme: ThemeDark, setErr: errors.New("disco cheio")}
	service := NewService(store)

	current, err := service.Toggle()

	assert.Error(t, err)
	assert.Equal(t, ThemeDark, current)
	assert.True(t, service.IsDark())
}

func TestSetNormalizaDesconhecidoParaEscuro(t *testing.T) {
	store := &fakeStore{theme: ThemeLight}
	service := NewService(store)

	require.NoError(t, service.Set("neon"))

	assert.Equal(t, ThemeDark, service.Current())
	assert.Equal(t, []string{ThemeDark}, store.writes)
}
