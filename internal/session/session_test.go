package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "joao_silva",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	sess := &Session{
		Barbeiro: models.Barber{ID: 1, Nome: "João Silva", Login: "joao_silva", Ativo: true},
		Token:    signedToken(t, time.Now().Add(time.Hour)),
		LoggedIn: true,
		CriadoEm: time.Now(),
	}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.Barbeiro, loaded.Barbeiro)
	assert.True(t, loaded.LoggedIn)
}

func TestStore_LoadMissingFileIsNil(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nao-existe.json"))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadExpiredTokenIsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Session{
		Barbeiro: models.Barber{ID: 1},
		Token:    signedToken(t, time.Now().Add(-time.Hour)),
		LoggedIn: true,
	}))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadLoggedOutIsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Session{
		Barbeiro: models.Barber{ID: 1},
		LoggedIn: false,
	}))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{nao é json"), 0o600))

	_, err := NewStore(path).Load()

	assert.Error(t, err)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Session{LoggedIn: true}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "limpar sessão ausente não é erro")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"sem token nunca expira", "", false},
		{"token fora do prazo", signedToken(t, now.Add(-time.Minute)), true},
		{"token dentro do prazo", signedToken(t, now.Add(time.Minute)), false},
		{"token ilegível é tolerado", "nao-e-um-jwt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Token: tt.token}
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}
