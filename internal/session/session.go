// Package session guarda a identidade do barbeiro autenticado em um
// único registro local. Toda leitura e escrita passa pelo Store; as
// telas recebem o Store pronto, nada de estado global.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

type Session struct {
	Barbeiro models.Barber `json:"barbeiro"`
	Token    string        `json:"token,omitempty"`
	LoggedIn bool          `json:"isLoggedIn"`
	CriadoEm time.Time     `json:"criadoEm"`
}

// Expired inspeciona o claim exp do token sem validar assinatura;
// o servidor continua sendo a autoridade, isto só evita um dashboard
// que vai falhar em toda chamada.
func (s *Session) Expired(now time.Time) bool {
	if s.Token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load retorna nil (sem erro) quando não há sessão utilizável:
// arquivo ausente, deslogado ou token expirado.
func (st *Store) Load() (*Session, error) {
	raw, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: lendo %s: %w", st.path, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("session: arquivo corrompido %s: %w", st.path, err)
	}

	if !s.LoggedIn || s.Expired(time.Now()) {
		return nil, nil
	}
	return &s, nil
}

func (st *Store) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("session: criando diretório: %w", err)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	if err := os.WriteFile(st.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: gravando %s: %w", st.path, err)
	}
	return nil
}

// Clear remove o registro; ausência já conta como sucesso.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
