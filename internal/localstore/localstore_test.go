package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)

	assert.Empty(t, store.Token())

	require.NoError(t, store.SetToken("token-abc"))
	assert.Equal(t, "token-abc", store.Token())

	// Outro processo lendo o mesmo arquivo enxerga o token persistido
	reopened, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", reopened.Token())

	require.NoError(t, store.ClearToken())
	assert.Empty(t, store.Token())
}

func TestThemeRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)

	assert.Empty(t, store.Theme())

	require.NoError(t, store.SetTheme("light"))

	reopened, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "light", reopened.Theme())
}

func TestArquivoCorrompidoViraEstadoVazio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrompido"), 0o600))

	store, err := New(path)
	require.NoError(t, err)

	assert.Empty(t, store.Token())
	assert.Empty(t, store.Theme())

	// E continua gravável
	require.NoError(t, store.SetToken("novo"))
	assert.Equal(t, "novo", store.Token())
}

func TestPermissoesDoArquivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("sensível"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
